package parser

import (
	"regexp"
	"strings"

	// Packages
	session "github.com/mutablelogic/go-weather/pkg/session"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Options change how a turn is committed to the session
type Options struct {
	// When true, forecast and alerts turns store the effective location.
	// When false they store the location as it was typed, and a turn which
	// carried its location from the session leaves it unchanged.
	RefreshCarriedLocation bool
}

// Resolution is the location and date of a turn after applying the session
type Resolution struct {
	Extracted string // City as parsed from the text
	City      string // City after substitution from the session
	Country   string // Country as parsed, empty when carried
	Date      string // Relative date, or empty
	Carried   bool   // True if City was taken from the session
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	reDate = regexp.MustCompile(`\b(today|tomorrow|tonight|this week|now)\b`)
)

// Common misspellings corrected before matching a date
var dateReplacer = strings.NewReplacer(
	"tommorow", "tomorrow",
	"tomorow", "tomorrow",
	"todays", "today",
)

// Words which refer back to the previous location
var placeholders = map[string]bool{
	"": true, "?": true, "there": true, "here": true, "it": true, "that": true, "this": true,
}

// Short follow-up questions which refer back to the previous location
var followUps = map[string]bool{
	"what about tomorrow?": true, "what about today?": true, "what about tonight?": true,
	"what about this week?": true, "what about now?": true, "what about": true,
	"and tomorrow?": true, "and today?": true, "and tonight?": true,
	"and this week?": true, "and now?": true,
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Resolve parses the location and date from the text and substitutes the
// session location and date where the text refers back to them
func Resolve(text string, s *session.Session) Resolution {
	city, country := ParseLocation(text)
	r := Resolution{
		Extracted: city,
		City:      city,
		Country:   country,
		Date:      ParseDate(text, s.Date()),
	}

	if last := s.Location(); last != "" {
		if IsPlaceholder(city) || followUps[strings.ToLower(strings.TrimSpace(text))] {
			r.City = last
			r.Country = ""
			r.Carried = true
		}
	}

	return r
}

// ParseDate returns the relative date named in the text, or the fallback
func ParseDate(text, fallback string) string {
	normalized := dateReplacer.Replace(strings.ToLower(text))
	if match := reDate.FindString(normalized); match != "" {
		return match
	}
	return fallback
}

// IsPlaceholder returns true if the city is a word which refers back to
// a previous location rather than naming one
func IsPlaceholder(city string) bool {
	return placeholders[strings.ToLower(strings.TrimSpace(city))]
}

// Location returns the effective location as "city" or "city, country"
func (r Resolution) Location() string {
	return JoinLocation(r.City, r.Country)
}

// Commit updates the session after a successful answer to a turn with the
// given intent. It is not called for errors or requests for a country.
func (r Resolution) Commit(intent Intent, s *session.Session, opts Options) {
	switch intent {
	case CurrentWeather, Clothing, AirQuality:
		s.SetLocation(r.City)
		s.SetDate("")
	case Forecast, Alerts:
		s.SetDate(r.Date)
		if opts.RefreshCarriedLocation {
			s.SetLocation(r.City)
		} else if !r.Carried && !IsPlaceholder(r.Extracted) {
			s.SetLocation(r.Extracted)
		}
	}
}
