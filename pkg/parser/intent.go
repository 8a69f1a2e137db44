package parser

import (
	"regexp"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Intent is the category of a user request
type Intent int

// Rule maps a predicate on the lowercased text to an intent
type Rule struct {
	Intent Intent
	Match  func(text string) bool
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Unknown Intent = iota
	CurrentWeather
	Forecast
	Alerts
	Clothing
	AirQuality
	News
)

var (
	reAirQuality = regexp.MustCompile(`\b(air quality|aqi|pollution|smog|pollen)\b`)
	reNews       = regexp.MustCompile(`\b(headlines|top stories)\b`)
)

// Rules are evaluated in order and the first match wins
var Rules = []Rule{
	{Forecast, containsAny("forecast", "next days", "tomorrow", "week")},
	{Alerts, containsAny("alert", "alerts", "warning", "warnings", "storm", "flood", "heatwave", "news")},
	{Clothing, containsAny("wear", "clothes", "clothing", "outfit")},
	{AirQuality, reAirQuality.MatchString},
	{News, reNews.MatchString},
	{CurrentWeather, func(text string) bool {
		return strings.Contains(text, "weather") && !containsAny("forecast", "alert", "alerts", "clothing", "sunrise", "sunset", "news", "warning", "warnings")(text)
	}},
}

// Phrases which request the chat history instead of a weather answer
var historyPhrases = []string{
	"history", "previous question", "chat log", "show my questions", "show my chat",
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Classify returns the intent of the text, or Unknown
func Classify(text string) Intent {
	text = strings.ToLower(text)
	for _, rule := range Rules {
		if rule.Match(text) {
			return rule.Intent
		}
	}
	return Unknown
}

// IsHistoryRequest returns true if the text asks for the chat history
func IsHistoryRequest(text string) bool {
	return containsAny(historyPhrases...)(strings.ToLower(text))
}

// NeedsLocation returns true if answering the intent requires a location
func (i Intent) NeedsLocation() bool {
	switch i {
	case CurrentWeather, Forecast, Alerts, Clothing, AirQuality:
		return true
	default:
		return false
	}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (i Intent) String() string {
	switch i {
	case CurrentWeather:
		return "current_weather"
	case Forecast:
		return "forecast"
	case Alerts:
		return "alerts"
	case Clothing:
		return "clothing"
	case AirQuality:
		return "air_quality"
	case News:
		return "news"
	default:
		return "unknown"
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// containsAny returns a predicate which matches any of the substrings
func containsAny(words ...string) func(string) bool {
	return func(text string) bool {
		for _, word := range words {
			if strings.Contains(text, word) {
				return true
			}
		}
		return false
	}
}
