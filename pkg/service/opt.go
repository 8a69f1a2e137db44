package service

import (
	// Packages
	weather "github.com/mutablelogic/go-weather"
	geocode "github.com/mutablelogic/go-weather/pkg/geocode"
	metrics "github.com/mutablelogic/go-weather/pkg/metrics"
	newsapi "github.com/mutablelogic/go-weather/pkg/newsapi"
	openmeteo "github.com/mutablelogic/go-weather/pkg/openmeteo"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring the service
type Opt func(*Service) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithGeocoder sets the geocoding client
func WithGeocoder(geo *geocode.Client) Opt {
	return func(s *Service) error {
		if geo == nil {
			return weather.ErrBadParameter.With("geocoder is required")
		}
		s.geo = geo
		return nil
	}
}

// WithWeather sets the weather client
func WithWeather(meteo *openmeteo.Client) Opt {
	return func(s *Service) error {
		if meteo == nil {
			return weather.ErrBadParameter.With("weather client is required")
		}
		s.meteo = meteo
		return nil
	}
}

// WithNews sets the news client. A nil client disables news.
func WithNews(news *newsapi.Client) Opt {
	return func(s *Service) error {
		s.news = news
		return nil
	}
}

// WithTracer sets the tracer for spans around each tool call
func WithTracer(tracer trace.Tracer) Opt {
	return func(s *Service) error {
		s.tracer = tracer
		return nil
	}
}

// WithMetrics sets the instruments which record each tool call
func WithMetrics(m *metrics.Metrics) Opt {
	return func(s *Service) error {
		s.metrics = m
		return nil
	}
}
