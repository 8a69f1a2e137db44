/*
service answers weather questions for a free-text location by geocoding
the location and calling the weather, air quality and news providers.
Every answer is a schema.Result, so callers can tell a successful answer
from a request for the country and from a failure.
*/
package service

import (
	"context"
	"errors"
	"time"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	weather "github.com/mutablelogic/go-weather"
	geocode "github.com/mutablelogic/go-weather/pkg/geocode"
	metrics "github.com/mutablelogic/go-weather/pkg/metrics"
	newsapi "github.com/mutablelogic/go-weather/pkg/newsapi"
	openmeteo "github.com/mutablelogic/go-weather/pkg/openmeteo"
	parser "github.com/mutablelogic/go-weather/pkg/parser"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Service struct {
	geo     *geocode.Client
	meteo   *openmeteo.Client
	news    *newsapi.Client
	tracer  trace.Tracer
	metrics *metrics.Metrics
}

// notFoundError is returned when a location with a country cannot be found
type notFoundError struct {
	location string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	tracerName = "github.com/mutablelogic/go-weather/pkg/service"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a service. The public geocoding and weather endpoints are used
// unless replaced with options. Without a news client, news requests fail.
func New(opts ...Opt) (*Service, error) {
	self := new(Service)
	for _, opt := range opts {
		if err := opt(self); err != nil {
			return nil, err
		}
	}

	// Set defaults
	if self.geo == nil {
		if geo, err := geocode.New(); err != nil {
			return nil, err
		} else {
			self.geo = geo
		}
	}
	if self.meteo == nil {
		if meteo, err := openmeteo.New(); err != nil {
			return nil, err
		} else {
			self.meteo = meteo
		}
	}
	if self.tracer == nil {
		self.tracer = noop.NewTracerProvider().Tracer(tracerName)
	}

	// Return success
	return self, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Locate geocodes a location given as "city" or "city, country". When the
// city is not found and no country was given, the result asks for the
// country.
func (s *Service) Locate(ctx context.Context, location string) schema.Result[schema.Location] {
	city, country := parser.SplitLocation(location)
	loc, err := s.geo.Lookup(ctx, city, country)
	switch {
	case err == nil:
		return schema.Success(*loc)
	case errors.Is(err, weather.ErrNotFound) && country == "":
		return schema.NeedsCountry[schema.Location](city)
	case errors.Is(err, weather.ErrNotFound):
		return schema.Failure[schema.Location](notFoundError{location})
	default:
		return schema.Failure[schema.Location](err)
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// observe runs fn within a span, and records the duration and outcome
func observe[T any](ctx context.Context, s *Service, name string, fn func(context.Context) schema.Result[T], attrs ...attribute.KeyValue) schema.Result[T] {
	ctx, endSpan := otel.StartSpan(s.tracer, ctx, name, attrs...)
	start := time.Now()
	result := fn(ctx)
	endSpan(result.Err)
	s.metrics.Tool(name, result.Kind.String(), time.Since(start))
	return result
}

// locateThen geocodes the location and calls fn with the result on success
func locateThen[T any](ctx context.Context, s *Service, location string, fn func(schema.Location) (*T, error)) schema.Result[T] {
	loc := s.Locate(ctx, location)
	switch loc.Kind {
	case schema.KindSuccess:
		if v, err := fn(loc.Value); err != nil {
			return schema.Failure[T](err)
		} else {
			return schema.Success(*v)
		}
	case schema.KindNeedsCountry:
		return schema.NeedsCountry[T](loc.City)
	default:
		return schema.Failure[T](loc.Err)
	}
}

///////////////////////////////////////////////////////////////////////////////
// ERRORS

func (e notFoundError) Error() string {
	return "Location not found: " + e.location
}

func (e notFoundError) Is(target error) bool {
	return target == weather.ErrNotFound
}
