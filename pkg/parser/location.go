/*
parser turns free text into the pieces a weather turn needs: a location,
a relative date, an intent and the arguments for the matching tool.
The rules are deliberately simple heuristics and are order-sensitive.
*/
package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	// Location phrase after a preposition, or after "wear in" / "weather in"
	reLocationPreposition = regexp.MustCompile(`(?i)\b(?:in|at)\s+([A-Za-z\s,]+)`)
	reLocationWear        = regexp.MustCompile(`(?i)wear in ([A-Za-z\s,]+)`)
	reLocationWeather     = regexp.MustCompile(`(?i)weather in ([A-Za-z\s,]+)`)

	// Temporal and filler words removed from the location phrase
	reFiller = regexp.MustCompile(`(?i)\b(today|now|please|tomorrow|right now|currently|this week|tonight|in the morning|in the evening|weather|wear|should|i|what)\b`)

	// Runs of whitespace
	reSpace = regexp.MustCompile(`\s+`)
)

// Tokens ignored when guessing a location from the last word
var stopWords = map[string]bool{
	"today": true, "now": true, "please": true, "tomorrow": true, "tonight": true,
	"currently": true, "week": true, "morning": true, "evening": true, "weather": true,
	"wear": true, "should": true, "i": true, "what": true,
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ParseLocation extracts a city and an optional country from free text.
// The country is empty when none was given.
func ParseLocation(text string) (string, string) {
	text = strings.TrimSpace(stripPunctuation(text))

	var phrase string
	if match := firstSubmatch(text, reLocationPreposition, reLocationWear, reLocationWeather); match != "" {
		phrase = match
	} else {
		phrase = lastLocationToken(text)
	}

	return SplitLocation(phrase)
}

// SplitLocation removes filler words from a location phrase and splits it
// into city and country on a single comma
func SplitLocation(phrase string) (string, string) {
	phrase = reFiller.ReplaceAllString(phrase, "")
	phrase = strings.TrimSpace(reSpace.ReplaceAllString(phrase, " "))

	parts := strings.Split(phrase, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}

// JoinLocation formats a city and optional country as "city, country"
func JoinLocation(city, country string) string {
	if country == "" {
		return city
	}
	return city + ", " + country
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// stripPunctuation removes everything except letters, digits, underscores,
// whitespace and commas. Slashes become spaces.
func stripPunctuation(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '/':
			b.WriteRune(' ')
		case r == ',', r == '_', unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// firstSubmatch returns the trimmed first capture of the first matching expression
func firstSubmatch(text string, exprs ...*regexp.Regexp) string {
	for _, expr := range exprs {
		if match := expr.FindStringSubmatch(text); len(match) > 1 {
			if phrase := strings.TrimSpace(match[1]); phrase != "" {
				return phrase
			}
		}
	}
	return ""
}

// lastLocationToken returns the last capitalized token which is not a stop
// word, else the last token which is not a stop word, else the text itself
func lastLocationToken(text string) string {
	var filtered []string
	for _, token := range strings.Fields(text) {
		if !stopWords[strings.ToLower(token)] {
			filtered = append(filtered, token)
		}
	}
	for i := len(filtered) - 1; i >= 0; i-- {
		if r, _ := utf8.DecodeRuneInString(filtered[i]); unicode.IsUpper(r) {
			return filtered[i]
		}
	}
	if len(filtered) > 0 {
		return filtered[len(filtered)-1]
	}
	return text
}
