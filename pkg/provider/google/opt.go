package google

import (
	// Packages
	weather "github.com/mutablelogic/go-weather"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a generation option
type Opt func(*options) error

type options struct {
	systemPrompt string
	temperature  *float64
	maxTokens    uint
	retries      uint
	tools        []tool.Tool
}

///////////////////////////////////////////////////////////////////////////////
// GENERATION OPTIONS
//
// See: https://ai.google.dev/gemini-api/docs/text-generation

// WithSystemPrompt sets the system instruction for the request.
//
// See: https://ai.google.dev/gemini-api/docs/system-instructions
func WithSystemPrompt(value string) Opt {
	return func(o *options) error {
		o.systemPrompt = value
		return nil
	}
}

// WithTemperature sets the temperature for the request (0.0 to 2.0)
func WithTemperature(value float64) Opt {
	return func(o *options) error {
		if value < 0 || value > 2 {
			return weather.ErrBadParameter.With("temperature must be between 0.0 and 2.0")
		}
		o.temperature = &value
		return nil
	}
}

// WithMaxTokens sets the maximum number of tokens to generate (minimum 1)
func WithMaxTokens(value uint) Opt {
	return func(o *options) error {
		if value < 1 {
			return weather.ErrBadParameter.With("max_tokens must be at least 1")
		}
		o.maxTokens = value
		return nil
	}
}

// WithRetries sets how many times a request is repeated after a rate limit,
// a server error or a transport error
func WithRetries(value uint) Opt {
	return func(o *options) error {
		o.retries = value
		return nil
	}
}

// WithTools declares the tools the model may call.
//
// See: https://ai.google.dev/gemini-api/docs/function-calling
func WithTools(tools ...tool.Tool) Opt {
	return func(o *options) error {
		o.tools = append(o.tools, tools...)
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func applyOpts(opts ...Opt) (*options, error) {
	o := new(options)
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}
