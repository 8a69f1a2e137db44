package service

import (
	"context"

	// Packages
	parser "github.com/mutablelogic/go-weather/pkg/parser"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Assumed when the current conditions omit a value
	DefaultTemperature = 25.0
	DefaultWindSpeed   = 5.0

	// Above this wind speed in km/h, a windbreaker is suggested
	WindyThreshold = 20.0
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Current returns the current conditions at a location
func (s *Service) Current(ctx context.Context, location string) schema.Result[schema.CurrentWeather] {
	return observe(ctx, s, "get_current_weather", func(ctx context.Context) schema.Result[schema.CurrentWeather] {
		return locateThen(ctx, s, location, func(loc schema.Location) (*schema.CurrentWeather, error) {
			return s.meteo.Current(ctx, loc)
		})
	}, attribute.String("location", location))
}

// Forecast returns the daily forecast for a number of days at a location
func (s *Service) Forecast(ctx context.Context, location string, days int) schema.Result[schema.Forecast] {
	return observe(ctx, s, "get_forecast", func(ctx context.Context) schema.Result[schema.Forecast] {
		return locateThen(ctx, s, location, func(loc schema.Location) (*schema.Forecast, error) {
			return s.meteo.Daily(ctx, loc, days)
		})
	}, attribute.String("location", location), attribute.Int("days", days))
}

// Alerts returns the active weather warnings at a location
func (s *Service) Alerts(ctx context.Context, location string) schema.Result[schema.Alerts] {
	return observe(ctx, s, "weather_alerts", func(ctx context.Context) schema.Result[schema.Alerts] {
		return locateThen(ctx, s, location, func(loc schema.Location) (*schema.Alerts, error) {
			return s.meteo.Warnings(ctx, loc)
		})
	}, attribute.String("location", location))
}

// AirQuality returns the air quality for the current hour at a location
func (s *Service) AirQuality(ctx context.Context, location string) schema.Result[schema.AirQuality] {
	return observe(ctx, s, "air_quality", func(ctx context.Context) schema.Result[schema.AirQuality] {
		return locateThen(ctx, s, location, func(loc schema.Location) (*schema.AirQuality, error) {
			return s.meteo.AirQuality(ctx, loc)
		})
	}, attribute.String("location", location))
}

// Clothing returns a suggestion of what to wear for the current conditions
// at a location
func (s *Service) Clothing(ctx context.Context, location string) schema.Result[schema.ClothingAdvice] {
	return observe(ctx, s, "clothing_suggestion", func(ctx context.Context) schema.Result[schema.ClothingAdvice] {
		current := locateThen(ctx, s, location, func(loc schema.Location) (*schema.CurrentWeather, error) {
			return s.meteo.Current(ctx, loc)
		})
		return schema.Map(current, func(w schema.CurrentWeather) schema.ClothingAdvice {
			temperature, wind := valueOr(w.Temperature, DefaultTemperature), valueOr(w.WindSpeed, DefaultWindSpeed)
			name := w.Location
			if name == "" {
				name = "Unknown location"
			}
			return schema.ClothingAdvice{
				Location:    name,
				Advice:      Suggest(temperature, wind),
				Temperature: temperature,
				WindSpeed:   wind,
			}
		})
	}, attribute.String("location", location))
}

// Suggest returns clothing advice for a temperature in °C and a wind speed
// in km/h
func Suggest(temperature, wind float64) string {
	var advice string
	switch {
	case temperature < 10:
		advice = "Wear a heavy jacket, gloves, and scarf."
	case temperature < 20:
		advice = "Wear a light jacket or sweater."
	case temperature < 30:
		advice = "Comfortable clothes like a t-shirt and jeans are fine."
	default:
		advice = "It's hot! Wear shorts and stay hydrated."
	}
	if wind > WindyThreshold {
		advice += " It's windy, consider a windbreaker."
	}
	return advice
}

// ClampDays bounds a requested number of forecast days
func ClampDays(days int) int {
	return min(max(days, parser.MinDays), parser.MaxDays)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
