package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Location is a geocoded place
type Location struct {
	City      string  `json:"city"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CurrentWeather are the conditions at a location now
type CurrentWeather struct {
	Location      string   `json:"location"`
	Time          string   `json:"time,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	WindSpeed     *float64 `json:"windspeed,omitempty"`
	WindDirection *float64 `json:"winddirection,omitempty"`
	WeatherCode   *int     `json:"weathercode,omitempty"`
	Humidity      *float64 `json:"humidity,omitempty"`
}

// Daily are same-length arrays indexed by day
type Daily struct {
	Time          []string   `json:"time"`
	TempMax       []*float64 `json:"temperature_2m_max"`
	TempMin       []*float64 `json:"temperature_2m_min"`
	Precipitation []*float64 `json:"precipitation_sum"`
}

// Forecast is a daily forecast for a location
type Forecast struct {
	Location string `json:"location"`
	Forecast Daily  `json:"forecast"`
}

// Alerts are the active weather warnings for a location
type Alerts struct {
	Location string   `json:"location"`
	Alerts   []string `json:"alerts"`
}

// AirQuality is the air quality for the current hour at a location
type AirQuality struct {
	Location string   `json:"location"`
	Time     string   `json:"time,omitempty"`
	USAQI    *float64 `json:"us_aqi,omitempty"`
	PM25     *float64 `json:"pm2_5,omitempty"`
	PM10     *float64 `json:"pm10,omitempty"`
	Ozone    *float64 `json:"ozone,omitempty"`
	NO2      *float64 `json:"nitrogen_dioxide,omitempty"`
}

// ClothingAdvice is a suggestion of what to wear at a location
type ClothingAdvice struct {
	Location    string  `json:"location"`
	Advice      string  `json:"clothing_advice"`
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"windspeed"`
}

// News are weather related article titles
type News struct {
	Headlines []string `json:"headlines"`
	Articles  []string `json:"articles"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns "city, country", or the city when the country is unknown
func (l Location) Name() string {
	city := l.City
	if city == "" {
		city = "Unknown"
	}
	if l.Country == "" {
		return city
	}
	return city + ", " + l.Country
}

// Len returns the number of days in the forecast
func (d Daily) Len() int {
	return len(d.Time)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (l Location) String() string {
	return types.Stringify(l)
}

func (w CurrentWeather) String() string {
	return types.Stringify(w)
}

func (f Forecast) String() string {
	return types.Stringify(f)
}

func (a AirQuality) String() string {
	return types.Stringify(a)
}
