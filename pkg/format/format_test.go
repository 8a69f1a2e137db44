package format_test

import (
	"errors"
	"testing"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
	format "github.com/mutablelogic/go-weather/pkg/format"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	session "github.com/mutablelogic/go-weather/pkg/session"
	assert "github.com/stretchr/testify/assert"
)

var daily = schema.Daily{
	Time:          []string{"2025-01-01", "2025-01-02", "2025-01-03"},
	TempMax:       []*float64{types.Ptr(10.5), types.Ptr(11.0), nil},
	TempMin:       []*float64{types.Ptr(1.0), types.Ptr(2.0), types.Ptr(3.0)},
	Precipitation: []*float64{types.Ptr(0.0), types.Ptr(0.4)},
}

func Test_format_001(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("❌ boom", format.Current(schema.Failure[schema.CurrentWeather](errors.New("boom"))))
	assert.Equal(
		"🌍 I couldn't find the location 'Moratuwa'. Please specify the country as well (e.g., 'Moratuwa, Sri Lanka').",
		format.Alerts(schema.NeedsCountry[schema.Alerts]("Moratuwa")),
	)
	assert.Equal("❌ Error processing request: boom", format.Failure(errors.New("boom")))
}

func Test_format_002(t *testing.T) {
	assert := assert.New(t)
	r := schema.Success(schema.CurrentWeather{
		Location:    "Paris, France",
		Temperature: types.Ptr(12.5),
		WindSpeed:   types.Ptr(22.0),
		WeatherCode: types.Ptr(3),
	})
	assert.Equal("🌍 Weather in Paris, France:\n🌡️ Temperature: 12.5°C, Condition: 3\n💨 Wind: 22 km/h\n💧 Humidity: N/A%", format.Current(r))

	r = schema.Success(schema.CurrentWeather{})
	assert.Equal("🌍 Weather in Unknown location:\n🌡️ Temperature: N/A°C, Condition: N/A\n💨 Wind: N/A km/h\n💧 Humidity: N/A%", format.Current(r))
}

func Test_format_003(t *testing.T) {
	assert := assert.New(t)
	r := schema.Success(schema.Forecast{Location: "Tokyo, Japan", Forecast: daily})

	assert.Equal(
		"📅 Forecast for tomorrow in Tokyo, Japan:\n🗓️ 2025-01-02: 🌡️ 2°C - 11°C, 🌧️ 0.4 mm rain",
		format.Forecast(r, format.Window{Day: 1}),
	)
	assert.Equal(
		"📅 Forecast for today in Tokyo, Japan:\n🗓️ 2025-01-01: 🌡️ 1°C - 10.5°C, 🌧️ 0 mm rain",
		format.Forecast(r, format.Window{Day: 0}),
	)
	assert.Equal(
		"📅 2-Day Forecast for Tokyo, Japan:\n\n🗓️ 2025-01-01: 🌡️ 1°C - 10.5°C, 🌧️ 0 mm rain\n🗓️ 2025-01-02: 🌡️ 2°C - 11°C, 🌧️ 0.4 mm rain",
		format.Forecast(r, format.Window{Day: -1, Days: 2}),
	)
	assert.Equal(
		"📅 3-Day Forecast for Tokyo, Japan:\n\n🗓️ 2025-01-01: 🌡️ 1°C - 10.5°C, 🌧️ 0 mm rain\n🗓️ 2025-01-02: 🌡️ 2°C - 11°C, 🌧️ 0.4 mm rain\n🗓️ 2025-01-03: 🌡️ 3°C - N/A°C, 🌧️ N/A mm rain",
		format.Forecast(r, format.Window{Day: -1, Days: 7}),
	)
}

func Test_format_004(t *testing.T) {
	// A day beyond the returned days lists every day
	assert := assert.New(t)
	r := schema.Success(schema.Forecast{Location: "Oslo", Forecast: schema.Daily{Time: []string{"2025-01-01"}, TempMin: []*float64{types.Ptr(-2.0)}}})
	assert.Equal(
		"📅 1-Day Forecast for Oslo:\n\n🗓️ 2025-01-01: 🌡️ -2°C - N/A°C, 🌧️ N/A mm rain",
		format.Forecast(r, format.Window{Day: 1}),
	)
}

func Test_format_005(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("✅ No weather alerts for Paris.", format.Alerts(schema.Success(schema.Alerts{Location: "Paris"})))
	assert.Equal(
		"🚨 Weather Alerts for Paris:\n- Strong wind\n- Flood\n",
		format.Alerts(schema.Success(schema.Alerts{Location: "Paris", Alerts: []string{"Strong wind", "Flood"}})),
	)
}

func Test_format_006(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(
		"👕 Clothing Suggestion for Berlin:\nWear a light jacket or sweater.",
		format.Clothing(schema.Success(schema.ClothingAdvice{Location: "Berlin", Advice: "Wear a light jacket or sweater."})),
	)
	assert.Equal(
		"🌫️ Air Quality in Delhi:\n🏭 US AQI: 152\n🌬️ PM2.5: 61.2 µg/m³, PM10: N/A µg/m³\n🧪 Ozone: N/A µg/m³, NO₂: N/A µg/m³",
		format.AirQuality(schema.Success(schema.AirQuality{Location: "Delhi", USAQI: types.Ptr(152.0), PM25: types.Ptr(61.2)})),
	)
}

func Test_format_007(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("📰 No news found.", format.News(schema.Success(schema.News{})))
	assert.Equal(
		"📰 Weather News:\n- Headline\n- Article\n",
		format.News(schema.Success(schema.News{Headlines: []string{"Headline"}, Articles: []string{"Article"}})),
	)
}

func Test_format_008(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("No chat history yet.", format.History(nil))
	assert.Equal(
		"\nChat History:\n1. You: hi\n   Bot: ❓ no\n2. You: weather in Paris\n   Bot: 🌍 ok\n",
		format.History([]session.Turn{{User: "hi", Assistant: "❓ no"}, {User: "weather in Paris", Assistant: "🌍 ok"}}),
	)
	assert.Contains(format.Unknown(), "I can only answer weather-related questions")
}
