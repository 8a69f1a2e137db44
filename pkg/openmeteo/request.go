package openmeteo

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	// Packages
	weather "github.com/mutablelogic/go-weather"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// CurrentRequest is a query for the current conditions
type CurrentRequest struct {
	Latitude  float64
	Longitude float64
}

// DailyRequest is a query for a daily forecast
type DailyRequest struct {
	Latitude  float64
	Longitude float64
	Days      int
}

// WarningsRequest is a query for active weather warnings
type WarningsRequest struct {
	Latitude  float64
	Longitude float64
}

// AirQualityRequest is a query for hourly air quality
type AirQualityRequest struct {
	Latitude  float64
	Longitude float64
}

///////////////////////////////////////////////////////////////////////////////
// RESPONSE TYPES

type currentResponse struct {
	CurrentWeather *struct {
		Time          string   `json:"time"`
		Temperature   *float64 `json:"temperature"`
		WindSpeed     *float64 `json:"windspeed"`
		WindDirection *float64 `json:"winddirection"`
		WeatherCode   *int     `json:"weathercode"`
	} `json:"current_weather"`
	Current struct {
		Humidity *float64 `json:"relative_humidity_2m"`
	} `json:"current"`
}

type dailyResponse struct {
	Daily schema.Daily `json:"daily"`
}

type warningsResponse struct {
	Warnings []json.RawMessage `json:"warnings"`
}

type airQualityResponse struct {
	Hourly struct {
		Time  []string   `json:"time"`
		USAQI []*float64 `json:"us_aqi"`
		PM25  []*float64 `json:"pm2_5"`
		PM10  []*float64 `json:"pm10"`
		Ozone []*float64 `json:"ozone"`
		NO2   []*float64 `json:"nitrogen_dioxide"`
	} `json:"hourly"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	MinDays = 1
	MaxDays = 16
)

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Values converts CurrentRequest to URL query parameters
func (r CurrentRequest) Values() url.Values {
	result := coordinates(r.Latitude, r.Longitude)
	result.Set("current_weather", "true")
	result.Set("current", "relative_humidity_2m")
	return result
}

// Validate checks the number of days
func (r DailyRequest) Validate() error {
	if r.Days < MinDays || r.Days > MaxDays {
		return weather.ErrBadParameter.Withf("days must be between %d and %d", MinDays, MaxDays)
	}
	return nil
}

// Values converts DailyRequest to URL query parameters
func (r DailyRequest) Values() url.Values {
	result := coordinates(r.Latitude, r.Longitude)
	result.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum")
	result.Set("timezone", "auto")
	result.Set("forecast_days", fmt.Sprint(r.Days))
	return result
}

// Values converts WarningsRequest to URL query parameters
func (r WarningsRequest) Values() url.Values {
	result := coordinates(r.Latitude, r.Longitude)
	result.Set("timezone", "auto")
	return result
}

// Values converts AirQualityRequest to URL query parameters
func (r AirQualityRequest) Values() url.Values {
	result := coordinates(r.Latitude, r.Longitude)
	result.Set("hourly", "pm10,pm2_5,ozone,nitrogen_dioxide,us_aqi")
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func coordinates(lat, lon float64) url.Values {
	result := url.Values{}
	result.Set("latitude", fmt.Sprint(lat))
	result.Set("longitude", fmt.Sprint(lon))
	return result
}

// lines renders each warning as a line of text. A warning is either a
// string, or an object from which the event and headline are used.
func (r warningsResponse) lines() []string {
	result := make([]string, 0, len(r.Warnings))
	for _, raw := range r.Warnings {
		if line := warningText(raw); line != "" {
			result = append(result, line)
		}
	}
	return result
}

func warningText(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strings.TrimSpace(text)
	}
	var obj struct {
		Event       string `json:"event"`
		Headline    string `json:"headline"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		parts := make([]string, 0, 2)
		for _, part := range []string{obj.Event, obj.Headline} {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) == 0 && obj.Description != "" {
			parts = append(parts, strings.TrimSpace(obj.Description))
		}
		if len(parts) > 0 {
			return strings.Join(parts, ": ")
		}
	}
	return strings.TrimSpace(string(raw))
}
