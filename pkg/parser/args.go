package parser

import (
	"regexp"
	"strconv"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Args are the arguments for the tool which answers a turn
type Args struct {
	Intent Intent `json:"intent"`

	// Location as "city" or "city, country"
	Location string `json:"location,omitempty"`

	// Forecast window, and whether the text named it
	Days         int  `json:"days,omitempty"`
	ExplicitDays bool `json:"explicit,omitempty"`

	// Single forecast day to show, or -1 for the whole window
	DayIndex int `json:"day_index"`

	// Relative date
	Date string `json:"date,omitempty"`

	// News headlines country code and search query
	Country string `json:"country,omitempty"`
	Query   string `json:"query,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	MinDays     = 1
	MaxDays     = 7
	DefaultDays = 3

	// Headlines country when none can be derived
	DefaultNewsCountry = "us"

	// Search query for news articles
	DefaultNewsQuery = "weather"
)

var (
	reDays = regexp.MustCompile(`(?i)(?:in|next|for|forecast for)\s*(\d+)\s*days?`)
)

// Country names mapped to the codes accepted by the headlines endpoint
var newsCountries = map[string]string{
	"australia": "au", "canada": "ca", "china": "cn", "france": "fr", "germany": "de",
	"india": "in", "ireland": "ie", "italy": "it", "japan": "jp", "netherlands": "nl",
	"new zealand": "nz", "singapore": "sg", "south africa": "za", "spain": "es",
	"sri lanka": "lk", "uk": "gb", "united kingdom": "gb", "england": "gb",
	"usa": "us", "united states": "us", "america": "us",
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ParseDays returns the number of days named in the text, clamped to
// [MinDays, MaxDays], and whether a count was present. The default is
// DefaultDays.
func ParseDays(text string) (int, bool) {
	match := reDays.FindStringSubmatch(text)
	if len(match) < 2 {
		return DefaultDays, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		// Too many digits to represent
		return MaxDays, true
	}
	return min(max(n, MinDays), MaxDays), true
}

// BuildArgs returns the tool arguments for a turn
func BuildArgs(intent Intent, r Resolution, text string) Args {
	args := Args{
		Intent:   intent,
		Location: r.Location(),
		Date:     r.Date,
		DayIndex: -1,
	}

	switch intent {
	case Forecast:
		args.Days, args.ExplicitDays = ParseDays(text)
		if !args.ExplicitDays {
			switch r.Date {
			case "today":
				args.Days, args.DayIndex = 2, 0
			case "tomorrow":
				args.Days, args.DayIndex = 2, 1
			}
		}
	case News:
		args.Location = ""
		args.Country = NewsCountry(r.Country)
		args.Query = DefaultNewsQuery
	}

	return args
}

// NewsCountry returns the two letter code for a country name or code,
// or DefaultNewsCountry
func NewsCountry(country string) string {
	country = strings.ToLower(strings.TrimSpace(country))
	if code, exists := newsCountries[country]; exists {
		return code
	}
	if len(country) == 2 {
		return country
	}
	return DefaultNewsCountry
}
