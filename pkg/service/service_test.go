package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-weather"
	geocode "github.com/mutablelogic/go-weather/pkg/geocode"
	metrics "github.com/mutablelogic/go-weather/pkg/metrics"
	newsapi "github.com/mutablelogic/go-weather/pkg/newsapi"
	openmeteo "github.com/mutablelogic/go-weather/pkg/openmeteo"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	service "github.com/mutablelogic/go-weather/pkg/service"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

var places = map[string]string{
	"Paris":         `[{"display_name":"Paris, Île-de-France, France","lat":"48.85","lon":"2.35"}]`,
	"Paris, France": `[{"display_name":"Paris, Île-de-France, France","lat":"48.85","lon":"2.35"}]`,
}

var routes = map[string]string{
	"/v1/forecast":        `{"current_weather":{"temperature":8,"windspeed":25,"weathercode":61},"daily":{"time":["2025-01-01","2025-01-02"],"temperature_2m_max":[10,11],"temperature_2m_min":[1,2],"precipitation_sum":[0,0.4]}}`,
	"/v1/warnings":        `{"warnings":["Strong wind"]}`,
	"/aq/v1/air-quality":  `{"hourly":{"time":["2025-01-01T00:00"],"us_aqi":[42]}}`,
	"/news/top-headlines": `{"status":"ok","articles":[{"title":"Headline"}]}`,
	"/news/everything":    `{"status":"ok","articles":[{"title":"Article"}]}`,
}

// newService returns a service backed by a fake server for every upstream
func newService(t *testing.T, withNews bool) *service.Service {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/search" {
			if body, exists := places[r.URL.Query().Get("q")]; exists {
				w.Write([]byte(body))
			} else {
				w.Write([]byte(`[]`))
			}
			return
		}
		if body, exists := routes[r.URL.Path]; exists {
			w.Write([]byte(body))
		} else {
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	geo, err := geocode.New(client.OptEndpoint(server.URL))
	require.NoError(t, err)
	meteo, err := openmeteo.NewWithEndpoint(server.URL+"/v1", server.URL+"/aq/v1")
	require.NoError(t, err)

	opts := []service.Opt{service.WithGeocoder(geo), service.WithWeather(meteo), service.WithMetrics(metrics.New())}
	if withNews {
		news, err := newsapi.New("key", client.OptEndpoint(server.URL+"/news"))
		require.NoError(t, err)
		opts = append(opts, service.WithNews(news))
	}
	s, err := service.New(opts...)
	require.NoError(t, err)
	return s
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_service_001(t *testing.T) {
	assert := assert.New(t)
	s := newService(t, false)

	r := s.Current(context.TODO(), "Paris")
	assert.Equal(schema.KindSuccess, r.Kind)
	assert.Equal("Paris", r.Value.Location)
	assert.Equal(8.0, *r.Value.Temperature)

	r = s.Current(context.TODO(), "Paris, France")
	assert.Equal("Paris, France", r.Value.Location)
}

func Test_service_002(t *testing.T) {
	// Unknown city without a country asks for the country
	assert := assert.New(t)
	s := newService(t, false)

	r := s.Forecast(context.TODO(), "Atlantis", 3)
	assert.Equal(schema.KindNeedsCountry, r.Kind)
	assert.Equal("Atlantis", r.City)
}

func Test_service_003(t *testing.T) {
	// Unknown city with a country is not found
	assert := assert.New(t)
	s := newService(t, false)

	r := s.Alerts(context.TODO(), "Atlantis, Nowhere")
	assert.Equal(schema.KindError, r.Kind)
	assert.Equal("Location not found: Atlantis, Nowhere", r.Message())
	assert.ErrorIs(r.Err, weather.ErrNotFound)
}

func Test_service_004(t *testing.T) {
	assert := assert.New(t)
	s := newService(t, false)

	f := s.Forecast(context.TODO(), "Paris", 2)
	assert.True(f.OK())
	assert.Equal(2, f.Value.Forecast.Len())

	a := s.Alerts(context.TODO(), "Paris")
	assert.True(a.OK())
	assert.Equal([]string{"Strong wind"}, a.Value.Alerts)

	aq := s.AirQuality(context.TODO(), "Paris")
	assert.True(aq.OK())
	assert.Equal(42.0, *aq.Value.USAQI)
}

func Test_service_005(t *testing.T) {
	assert := assert.New(t)
	s := newService(t, false)

	r := s.Clothing(context.TODO(), "Paris")
	assert.True(r.OK())
	assert.Equal("Wear a heavy jacket, gloves, and scarf. It's windy, consider a windbreaker.", r.Value.Advice)
	assert.Equal(8.0, r.Value.Temperature)
	assert.Equal(25.0, r.Value.WindSpeed)

	// Carried over from geocoding
	r = s.Clothing(context.TODO(), "Atlantis")
	assert.Equal(schema.KindNeedsCountry, r.Kind)
}

func Test_service_006(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Wear a heavy jacket, gloves, and scarf.", service.Suggest(9.9, 5))
	assert.Equal("Wear a light jacket or sweater.", service.Suggest(10, 5))
	assert.Equal("Comfortable clothes like a t-shirt and jeans are fine.", service.Suggest(20, 20))
	assert.Equal("It's hot! Wear shorts and stay hydrated.", service.Suggest(30, 5))
	assert.Equal("It's hot! Wear shorts and stay hydrated. It's windy, consider a windbreaker.", service.Suggest(35, 20.1))
	assert.Equal(1, service.ClampDays(0))
	assert.Equal(7, service.ClampDays(12))
}

func Test_service_007(t *testing.T) {
	assert := assert.New(t)

	// Without a client, news fails
	r := newService(t, false).News(context.TODO(), "", "")
	assert.Equal(schema.KindError, r.Kind)
	assert.ErrorIs(r.Err, weather.ErrNotImplemented)

	// With a client, both lists are returned
	r = newService(t, true).News(context.TODO(), "gb", "")
	assert.True(r.OK())
	assert.Equal([]string{"Headline"}, r.Value.Headlines)
	assert.Equal([]string{"Article"}, r.Value.Articles)
}

func Test_service_008(t *testing.T) {
	assert := assert.New(t)
	tk, err := tool.NewToolkit(service.NewTools(newService(t, true))...)
	require.NoError(t, err)
	assert.Len(tk.Tools(), 6)

	// Tool results marshal as the value
	result, err := tk.Run(context.TODO(), "get_forecast", json.RawMessage(`{"location":"Paris","days":2}`))
	assert.NoError(err)
	data, err := json.Marshal(result)
	assert.NoError(err)
	assert.Contains(string(data), `"location":"Paris"`)
	assert.Contains(string(data), `"temperature_2m_max":[10,11]`)

	// Out of range days fail validation
	_, err = tk.Run(context.TODO(), "get_forecast", json.RawMessage(`{"location":"Paris","days":9}`))
	assert.ErrorIs(err, weather.ErrBadParameter)

	// Needs country is reported in the result
	result, err = tk.Run(context.TODO(), "get_current_weather", json.RawMessage(`{"location":"Atlantis"}`))
	assert.NoError(err)
	data, err = json.Marshal(result)
	assert.NoError(err)
	assert.JSONEq(`{"need_country":true,"city":"Atlantis"}`, string(data))
}
