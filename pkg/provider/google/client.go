/*
google implements an API client for the Google Gemini REST API, limited to
generating content with text and function calls.
https://ai.google.dev/gemini-api/docs
*/
package google

import (
	// Packages
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-weather"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint     = "https://generativelanguage.googleapis.com/v1beta"
	defaultName  = "gemini"
	DefaultModel = "gemini-2.5-pro"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new Google Gemini API client with the given API key. The
// endpoint can be overridden with an option.
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	if apiKey == "" {
		return nil, weather.ErrBadParameter.With("missing API key")
	}
	opts = append([]client.ClientOpt{client.OptEndpoint(endPoint)}, opts...)
	opts = append(opts, client.OptHeader("x-goog-api-key", apiKey))
	if c, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{c}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the provider name
func (*Client) Name() string {
	return defaultName
}
