package format

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Window selects the days of a forecast to show
type Window struct {
	// Show only this day, or all days when negative
	Day int

	// Number of days asked for, or zero to show all returned days
	Days int
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Current renders the current conditions
func Current(r schema.Result[schema.CurrentWeather]) string {
	return Reply(r, func(w schema.CurrentWeather) string {
		code := NotAvailable
		if w.WeatherCode != nil {
			code = strconv.Itoa(*w.WeatherCode)
		}
		return fmt.Sprintf("🌍 Weather in %s:\n🌡️ Temperature: %s°C, Condition: %s\n💨 Wind: %s km/h\n💧 Humidity: %s%%",
			orUnknown(w.Location), number(w.Temperature), code, number(w.WindSpeed), number(w.Humidity),
		)
	})
}

// Forecast renders a single day, or a number of days of a forecast
func Forecast(r schema.Result[schema.Forecast], window Window) string {
	return Reply(r, func(f schema.Forecast) string {
		daily, location := f.Forecast, orUnknown(f.Location)

		// A single day
		if window.Day >= 0 && window.Day < daily.Len() {
			label := "today"
			if window.Day == 1 {
				label = "tomorrow"
			}
			return fmt.Sprintf("📅 Forecast for %s in %s:\n%s", label, location, day(daily, window.Day))
		}

		// A number of days
		n := daily.Len()
		if window.Days > 0 {
			n = min(window.Days, n)
		}
		var reply strings.Builder
		fmt.Fprintf(&reply, "📅 %d-Day Forecast for %s:\n", n, location)
		for i := range n {
			reply.WriteString("\n" + day(daily, i))
		}
		return reply.String()
	})
}

// Alerts renders the active warnings
func Alerts(r schema.Result[schema.Alerts]) string {
	return Reply(r, func(a schema.Alerts) string {
		location := orUnknown(a.Location)
		if len(a.Alerts) == 0 {
			return fmt.Sprintf("✅ No weather alerts for %s.", location)
		}
		var reply strings.Builder
		fmt.Fprintf(&reply, "🚨 Weather Alerts for %s:\n", location)
		for _, alert := range a.Alerts {
			fmt.Fprintf(&reply, "- %s\n", alert)
		}
		return reply.String()
	})
}

// Clothing renders clothing advice
func Clothing(r schema.Result[schema.ClothingAdvice]) string {
	return Reply(r, func(c schema.ClothingAdvice) string {
		return fmt.Sprintf("👕 Clothing Suggestion for %s:\n%s", orUnknown(c.Location), c.Advice)
	})
}

// AirQuality renders the air quality for the current hour
func AirQuality(r schema.Result[schema.AirQuality]) string {
	return Reply(r, func(aq schema.AirQuality) string {
		return fmt.Sprintf("🌫️ Air Quality in %s:\n🏭 US AQI: %s\n🌬️ PM2.5: %s µg/m³, PM10: %s µg/m³\n🧪 Ozone: %s µg/m³, NO₂: %s µg/m³",
			orUnknown(aq.Location), number(aq.USAQI), number(aq.PM25), number(aq.PM10), number(aq.Ozone), number(aq.NO2),
		)
	})
}

// News renders headline and article titles
func News(r schema.Result[schema.News]) string {
	return Reply(r, func(n schema.News) string {
		if len(n.Headlines) == 0 && len(n.Articles) == 0 {
			return noNewsReply
		}
		var reply strings.Builder
		reply.WriteString("📰 Weather News:\n")
		for _, title := range slices.Concat(n.Headlines, n.Articles) {
			fmt.Fprintf(&reply, "- %s\n", title)
		}
		return reply.String()
	})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func day(d schema.Daily, i int) string {
	return fmt.Sprintf("🗓️ %s: 🌡️ %s°C - %s°C, 🌧️ %s mm rain", d.Time[i], at(d.TempMin, i), at(d.TempMax, i), at(d.Precipitation, i))
}
