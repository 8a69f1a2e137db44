package assistant

import (
	// Packages
	metrics "github.com/mutablelogic/go-weather/pkg/metrics"
	parser "github.com/mutablelogic/go-weather/pkg/parser"
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring the assistant
type Opt func(*Assistant) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithOptions sets how a turn is committed to the session
func WithOptions(opts parser.Options) Opt {
	return func(a *Assistant) error {
		a.opts = opts
		return nil
	}
}

// WithMetrics sets the instruments which count turns
func WithMetrics(m *metrics.Metrics) Opt {
	return func(a *Assistant) error {
		a.metrics = m
		return nil
	}
}

// WithLogger sets the logger
func WithLogger(log zerolog.Logger) Opt {
	return func(a *Assistant) error {
		a.log = log
		return nil
	}
}
