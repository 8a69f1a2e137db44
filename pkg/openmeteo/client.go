/*
openmeteo implements an API client for the Open-Meteo forecast, warnings
and air quality APIs. No API key is required.
https://open-meteo.com/en/docs
*/
package openmeteo

import (
	"context"
	"errors"
	"net/http"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	weather "github.com/mutablelogic/go-weather"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// noDataError is returned when a response is missing the requested data
type noDataError string

type Client struct {
	*client.Client
	air *client.Client
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ForecastEndpoint   = "https://api.open-meteo.com/v1"
	AirQualityEndpoint = "https://air-quality-api.open-meteo.com/v1"
	DefaultTimeout     = 20 * time.Second
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client for the public Open-Meteo endpoints
func New(opts ...client.ClientOpt) (*Client, error) {
	return NewWithEndpoint(ForecastEndpoint, AirQualityEndpoint, opts...)
}

// NewWithEndpoint creates a client with the forecast and air quality
// endpoints given explicitly
func NewWithEndpoint(forecast, airquality string, opts ...client.ClientOpt) (*Client, error) {
	if forecast == "" || airquality == "" {
		return nil, weather.ErrBadParameter.With("missing endpoint")
	}

	// Options are applied after the defaults, so a caller can override the timeout
	defaults := []client.ClientOpt{client.OptTimeout(DefaultTimeout)}
	forecastClient, err := client.New(append(append(defaults, opts...), client.OptEndpoint(forecast))...)
	if err != nil {
		return nil, err
	}
	airClient, err := client.New(append(append(defaults, opts...), client.OptEndpoint(airquality))...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client: forecastClient,
		air:    airClient,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Current returns the current conditions and relative humidity at a location
func (c *Client) Current(ctx context.Context, loc schema.Location) (*schema.CurrentWeather, error) {
	var response currentResponse
	req := CurrentRequest{Latitude: loc.Latitude, Longitude: loc.Longitude}

	// Request -> Response
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("forecast"), client.OptQuery(req.Values())); err != nil {
		return nil, weather.Upstream(err)
	} else if response.CurrentWeather == nil {
		return nil, noDataError("No current weather data returned.")
	}

	return &schema.CurrentWeather{
		Location:      loc.Name(),
		Time:          response.CurrentWeather.Time,
		Temperature:   response.CurrentWeather.Temperature,
		WindSpeed:     response.CurrentWeather.WindSpeed,
		WindDirection: response.CurrentWeather.WindDirection,
		WeatherCode:   response.CurrentWeather.WeatherCode,
		Humidity:      response.Current.Humidity,
	}, nil
}

// Daily returns the daily forecast for a number of days at a location
func (c *Client) Daily(ctx context.Context, loc schema.Location, days int) (*schema.Forecast, error) {
	var response dailyResponse
	req := DailyRequest{Latitude: loc.Latitude, Longitude: loc.Longitude, Days: days}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Request -> Response
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("forecast"), client.OptQuery(req.Values())); err != nil {
		return nil, weather.Upstream(err)
	}

	return &schema.Forecast{
		Location: loc.Name(),
		Forecast: response.Daily,
	}, nil
}

// Warnings returns the active weather warnings at a location. A location
// for which the service has no warnings coverage returns no warnings.
func (c *Client) Warnings(ctx context.Context, loc schema.Location) (*schema.Alerts, error) {
	var response warningsResponse
	req := WarningsRequest{Latitude: loc.Latitude, Longitude: loc.Longitude}

	// Request -> Response
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("warnings"), client.OptQuery(req.Values())); err != nil && !isNotFound(err) {
		return nil, weather.Upstream(err)
	}

	return &schema.Alerts{
		Location: loc.Name(),
		Alerts:   response.lines(),
	}, nil
}

// AirQuality returns the air quality for the current hour at a location
func (c *Client) AirQuality(ctx context.Context, loc schema.Location) (*schema.AirQuality, error) {
	var response airQualityResponse
	req := AirQualityRequest{Latitude: loc.Latitude, Longitude: loc.Longitude}

	// Request -> Response
	if err := c.air.DoWithContext(ctx, nil, &response, client.OptPath("air-quality"), client.OptQuery(req.Values())); err != nil {
		return nil, weather.Upstream(err)
	}

	return &schema.AirQuality{
		Location: loc.Name(),
		Time:     first(response.Hourly.Time),
		USAQI:    firstValue(response.Hourly.USAQI),
		PM25:     firstValue(response.Hourly.PM25),
		PM10:     firstValue(response.Hourly.PM10),
		Ozone:    firstValue(response.Hourly.Ozone),
		NO2:      firstValue(response.Hourly.NO2),
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// isNotFound returns true if the error represents an HTTP 404 response
func isNotFound(err error) bool {
	var httpErr httpresponse.Err
	return errors.As(err, &httpErr) && int(httpErr) == http.StatusNotFound
}

func first[T any](v []T) T {
	var zero T
	if len(v) == 0 {
		return zero
	}
	return v[0]
}

func firstValue(v []*float64) *float64 {
	return first(v)
}

///////////////////////////////////////////////////////////////////////////////
// ERRORS

func (e noDataError) Error() string {
	return string(e)
}

func (e noDataError) Is(target error) bool {
	return target == weather.ErrUpstream
}
