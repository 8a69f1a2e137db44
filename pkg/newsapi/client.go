/*
newsapi implements an API client for NewsAPI, used to fetch weather
related headlines and articles.
https://newsapi.org/docs
*/
package newsapi

import (
	"time"

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
	endPoint       = "https://newsapi.org/v2"
	DefaultTimeout = 20 * time.Second
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client with an API key
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	if apiKey == "" {
		return nil, weather.ErrBadParameter.With("missing API key")
	}
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endPoint),
		client.OptTimeout(DefaultTimeout),
	}, opts...)
	opts = append(opts, client.OptHeader("X-Api-Key", apiKey))
	if c, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{c}, nil
	}
}
