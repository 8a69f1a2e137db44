package agent

import (
	// Packages
	weather "github.com/mutablelogic/go-weather"
	metrics "github.com/mutablelogic/go-weather/pkg/metrics"
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Opt func(*Agent) error

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WithModel sets the model name
func WithModel(model string) Opt {
	return func(a *Agent) error {
		if model != "" {
			a.model = model
		}
		return nil
	}
}

// WithSystemPrompt replaces the system prompt
func WithSystemPrompt(prompt string) Opt {
	return func(a *Agent) error {
		if prompt != "" {
			a.systemPrompt = prompt
		}
		return nil
	}
}

// WithTemperature sets the sampling temperature (0.0 to 2.0)
func WithTemperature(value float64) Opt {
	return func(a *Agent) error {
		if value < 0 || value > 2 {
			return weather.ErrBadParameter.With("temperature must be between 0.0 and 2.0")
		}
		a.temperature = value
		return nil
	}
}

// WithRetries sets how many times a failed model request is repeated
func WithRetries(value uint) Opt {
	return func(a *Agent) error {
		a.retries = value
		return nil
	}
}

// WithMaxRounds sets the maximum number of model requests in a turn
func WithMaxRounds(value uint) Opt {
	return func(a *Agent) error {
		if value == 0 {
			return weather.ErrBadParameter.With("max rounds must be at least 1")
		}
		a.maxRounds = value
		return nil
	}
}

func WithMetrics(m *metrics.Metrics) Opt {
	return func(a *Agent) error {
		a.metrics = m
		return nil
	}
}

func WithLogger(log zerolog.Logger) Opt {
	return func(a *Agent) error {
		a.log = log
		return nil
	}
}
