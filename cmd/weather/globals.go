package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	// Packages
	client "github.com/mutablelogic/go-client"
	types "github.com/mutablelogic/go-server/pkg/types"
	agent "github.com/mutablelogic/go-weather/pkg/agent"
	assistant "github.com/mutablelogic/go-weather/pkg/assistant"
	geocode "github.com/mutablelogic/go-weather/pkg/geocode"
	httpclient "github.com/mutablelogic/go-weather/pkg/httpclient"
	httphandler "github.com/mutablelogic/go-weather/pkg/httphandler"
	newsapi "github.com/mutablelogic/go-weather/pkg/newsapi"
	openmeteo "github.com/mutablelogic/go-weather/pkg/openmeteo"
	google "github.com/mutablelogic/go-weather/pkg/provider/google"
	service "github.com/mutablelogic/go-weather/pkg/service"
	session "github.com/mutablelogic/go-weather/pkg/session"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Chatter answers turns and keeps the session
type Chatter interface {
	httphandler.Chatter
	Close() error
}

// chatter closes the store when done
type chatter struct {
	httphandler.Chatter
	store session.Store
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Chatter returns the deterministic assistant, or the language model agent
// when useAgent is true. The caller closes it.
func (g *Globals) Chatter(useAgent bool) (Chatter, error) {
	svc, err := g.Service()
	if err != nil {
		return nil, err
	}
	store, err := session.Open(g.config.Store)
	if err != nil {
		return nil, err
	}

	// Assistant without a language model
	if !useAgent {
		a, err := assistant.New(svc, store,
			assistant.WithOptions(g.config.Options()),
			assistant.WithMetrics(g.metrics),
			assistant.WithLogger(g.log),
		)
		if err != nil {
			return nil, closeWith(err, store)
		}
		return &chatter{a, store}, nil
	}

	// Agent with the weather tools
	if g.GeminiAPIKey == "" {
		return nil, closeWith(fmt.Errorf("--gemini-api-key or GEMINI_API_KEY is required with --agent"), store)
	}
	generator, err := google.New(g.GeminiAPIKey, g.clientOpts()...)
	if err != nil {
		return nil, closeWith(err, store)
	}
	toolkit, err := tool.NewToolkit(service.NewTools(svc)...)
	if err != nil {
		return nil, closeWith(err, store)
	}
	a, err := agent.New(generator, toolkit, store,
		agent.WithModel(g.config.Model),
		agent.WithSystemPrompt(g.config.SystemPrompt),
		agent.WithTemperature(g.config.Temperature),
		agent.WithRetries(g.config.Retries),
		agent.WithMaxRounds(g.config.MaxRounds),
		agent.WithMetrics(g.metrics),
		agent.WithLogger(g.log),
	)
	if err != nil {
		return nil, closeWith(err, store)
	}
	return &chatter{a, store}, nil
}

// Service returns the weather service with the API clients
func (g *Globals) Service() (*service.Service, error) {
	geo, err := geocode.New(append(g.clientOpts(), client.OptTimeout(g.config.Timeouts.Geocode))...)
	if err != nil {
		return nil, err
	}
	meteo, err := openmeteo.New(append(g.clientOpts(), client.OptTimeout(g.config.Timeouts.Fetch))...)
	if err != nil {
		return nil, err
	}
	opts := []service.Opt{
		service.WithGeocoder(geo),
		service.WithWeather(meteo),
		service.WithTracer(g.tracer),
		service.WithMetrics(g.metrics),
	}
	if g.NewsAPIKey != "" {
		news, err := newsapi.New(g.NewsAPIKey, append(g.clientOpts(), client.OptTimeout(g.config.Timeouts.Fetch))...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, service.WithNews(news))
	}
	return service.New(opts...)
}

// Client returns an httpclient.Client configured from the global HTTP flags.
func (g *Globals) Client() (*httpclient.Client, error) {
	endpoint, err := g.clientEndpoint()
	if err != nil {
		return nil, err
	}
	opts := g.clientOpts()
	if g.HTTP.Timeout > 0 {
		opts = append(opts, client.OptTimeout(g.HTTP.Timeout))
	}
	return httpclient.New(endpoint, opts...)
}

func (c *chatter) Close() error {
	return c.store.Close()
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// clientOpts returns the options shared by all API clients
func (g *Globals) clientOpts() []client.ClientOpt {
	opts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		opts = append(opts, client.OptTracer(g.tracer))
	}
	return opts
}

// clientEndpoint returns the server endpoint URL from the listen address
func (g *Globals) clientEndpoint() (string, error) {
	scheme := "http"
	host, port, err := net.SplitHostPort(g.HTTP.Addr)
	if err != nil {
		return "", err
	}

	// Default host to localhost if empty (e.g., ":8084")
	if host == "" {
		host = "localhost"
	}

	// Parse port
	portn, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return "", err
	}
	if portn == 443 {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s:%v%s", scheme, host, portn, types.NormalisePath(g.HTTP.Prefix)), nil
}

// closeWith closes the store and returns err
func closeWith(err error, store session.Store) error {
	store.Close()
	return err
}
