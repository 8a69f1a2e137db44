package service

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	types "github.com/mutablelogic/go-server/pkg/types"
	weather "github.com/mutablelogic/go-weather"
	parser "github.com/mutablelogic/go-weather/pkg/parser"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TOOL TYPES

type currentWeather struct{ *Service }
type forecast struct{ *Service }
type clothing struct{ *Service }
type alerts struct{ *Service }
type airQuality struct{ *Service }
type news struct{ *Service }

var _ tool.Tool = (*currentWeather)(nil)
var _ tool.Tool = (*forecast)(nil)
var _ tool.Tool = (*clothing)(nil)
var _ tool.Tool = (*alerts)(nil)
var _ tool.Tool = (*airQuality)(nil)
var _ tool.Tool = (*news)(nil)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// LocationRequest names a location for the current weather, clothing,
// alerts and air quality tools
type LocationRequest struct {
	Location string `json:"location" jsonschema:"City and optionally country, e.g. 'Berlin, Germany'."`
}

// ForecastRequest names a location and the number of days to forecast
type ForecastRequest struct {
	Location string `json:"location" jsonschema:"City and optionally country, e.g. 'London, UK'."`
	Days     int    `json:"days" jsonschema:"Number of days (1-7)."`
}

// NewsRequest selects the headlines country and the search query
type NewsRequest struct {
	Country string `json:"country,omitempty" jsonschema:"Two letter country code for the top headlines, e.g. 'us' or 'gb'."`
	Query   string `json:"query,omitempty" jsonschema:"Search terms for articles. Defaults to 'weather'."`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the tools which answer weather questions, for use with
// a language model
func NewTools(s *Service) []tool.Tool {
	return []tool.Tool{
		&currentWeather{s},
		&forecast{s},
		&clothing{s},
		&alerts{s},
		&airQuality{s},
		&news{s},
	}
}

///////////////////////////////////////////////////////////////////////////////
// get_current_weather

func (*currentWeather) Name() string { return "get_current_weather" }

func (*currentWeather) Description() string {
	return "Get current weather for a location using Open-Meteo API."
}

func (*currentWeather) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[LocationRequest](nil)
}

func (t *currentWeather) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req LocationRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	return t.Current(ctx, req.Location), nil
}

///////////////////////////////////////////////////////////////////////////////
// get_forecast

func (*forecast) Name() string { return "get_forecast" }

func (*forecast) Description() string {
	return "Get weather forecast for the next N days using Open-Meteo API."
}

func (*forecast) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[ForecastRequest](nil)
	if err != nil {
		return nil, err
	}
	if days, exists := schema.Properties["days"]; exists {
		days.Minimum = types.Ptr(float64(parser.MinDays))
		days.Maximum = types.Ptr(float64(parser.MaxDays))
	}
	return schema, nil
}

func (t *forecast) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req ForecastRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	return t.Forecast(ctx, req.Location, ClampDays(req.Days)), nil
}

///////////////////////////////////////////////////////////////////////////////
// clothing_suggestion

func (*clothing) Name() string { return "clothing_suggestion" }

func (*clothing) Description() string {
	return "Suggest clothing based on current weather conditions."
}

func (*clothing) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[LocationRequest](nil)
}

func (t *clothing) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req LocationRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	return t.Clothing(ctx, req.Location), nil
}

///////////////////////////////////////////////////////////////////////////////
// weather_alerts

func (*alerts) Name() string { return "weather_alerts" }

func (*alerts) Description() string {
	return "Check for severe weather alerts in a given location using Open-Meteo API."
}

func (*alerts) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[LocationRequest](nil)
}

func (t *alerts) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req LocationRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	return t.Alerts(ctx, req.Location), nil
}

///////////////////////////////////////////////////////////////////////////////
// air_quality

func (*airQuality) Name() string { return "air_quality" }

func (*airQuality) Description() string {
	return "Get the current air quality index and pollutant levels for a location using Open-Meteo API."
}

func (*airQuality) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[LocationRequest](nil)
}

func (t *airQuality) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req LocationRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	return t.AirQuality(ctx, req.Location), nil
}

///////////////////////////////////////////////////////////////////////////////
// weather_news

func (*news) Name() string { return "weather_news" }

func (*news) Description() string {
	return "Get top news headlines for a country and recent articles about the weather."
}

func (*news) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[NewsRequest](nil)
}

func (t *news) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req NewsRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	return t.News(ctx, parser.NewsCountry(req.Country), req.Query), nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func decode(input json.RawMessage, v any) error {
	if len(input) == 0 {
		return nil
	}
	if err := json.Unmarshal(input, v); err != nil {
		return weather.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
	}
	return nil
}
