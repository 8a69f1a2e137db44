/*
format renders tool results as the replies shown to the user. Each
function renders a schema.Result, so an error or a request for the country
is rendered the same way whichever tool produced it.
*/
package format

import (
	"fmt"
	"strconv"
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	session "github.com/mutablelogic/go-weather/pkg/session"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	NotAvailable    = "N/A"
	UnknownLocation = "Unknown location"

	unknownReply         = "❓ Sorry, I can only answer weather-related questions such as current weather, forecasts, clothing suggestions, or weather alerts for a location."
	missingLocationReply = "📍 Please tell me which location you are asking about, for example 'What's the weather in Colombo, Sri Lanka?'"
	noHistoryReply       = "No chat history yet."
	noNewsReply          = "📰 No news found."
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Reply renders a result, using fn for the successful value
func Reply[T any](r schema.Result[T], fn func(T) string) string {
	switch r.Kind {
	case schema.KindSuccess:
		return fn(r.Value)
	case schema.KindNeedsCountry:
		return NeedsCountry(r.City)
	case schema.KindError:
		return Error(r.Message())
	default:
		return Error(fmt.Sprintf("unexpected result %q", r.Kind))
	}
}

// Error renders an error message
func Error(message string) string {
	return "❌ " + message
}

// Failure renders an error which escaped the turn
func Failure(err error) string {
	return Error("Error processing request: " + err.Error())
}

// NeedsCountry asks for the country of a city which could not be found
func NeedsCountry(city string) string {
	return fmt.Sprintf("🌍 I couldn't find the location '%s'. Please specify the country as well (e.g., 'Moratuwa, Sri Lanka').", city)
}

// Unknown is the reply to a request which is not about the weather
func Unknown() string {
	return unknownReply
}

// MissingLocation is the reply when no location was given or remembered
func MissingLocation() string {
	return missingLocationReply
}

// History lists the turns of a conversation
func History(turns []session.Turn) string {
	if len(turns) == 0 {
		return noHistoryReply
	}
	var reply strings.Builder
	reply.WriteString("\nChat History:\n")
	for i, turn := range turns {
		fmt.Fprintf(&reply, "%d. You: %s\n   Bot: %s\n", i+1, turn.User, turn.Assistant)
	}
	return reply.String()
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// number renders a value without trailing zeros, or N/A
func number(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// at renders the value at index i, or N/A when out of range or missing
func at(v []*float64, i int) string {
	if i < 0 || i >= len(v) {
		return NotAvailable
	}
	return number(v[i])
}

func orUnknown(location string) string {
	if location == "" {
		return UnknownLocation
	}
	return location
}
