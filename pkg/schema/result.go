package schema

import (
	"encoding/json"
	"errors"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Kind is the outcome of a tool call
type Kind uint

// Result is the outcome of a tool call. Exactly one of Value (for KindSuccess),
// City (for KindNeedsCountry) or Err (for KindError) is meaningful.
type Result[T any] struct {
	Kind  Kind
	Value T
	City  string
	Err   error
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	KindSuccess      Kind = iota // Value is set
	KindNeedsCountry             // The city could not be found without a country
	KindError                    // The tool failed
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Success returns a successful result
func Success[T any](v T) Result[T] {
	return Result[T]{Kind: KindSuccess, Value: v}
}

// NeedsCountry returns a result asking for the country of a city
func NeedsCountry[T any](city string) Result[T] {
	return Result[T]{Kind: KindNeedsCountry, City: city}
}

// Failure returns a failed result. A nil error is replaced with a generic one.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("unknown error")
	}
	return Result[T]{Kind: KindError, Err: err}
}

// Map converts a successful result with fn, and carries other outcomes over
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	switch r.Kind {
	case KindSuccess:
		return Success(fn(r.Value))
	case KindNeedsCountry:
		return NeedsCountry[U](r.City)
	default:
		return Failure[U](r.Err)
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// OK returns true for a successful result
func (r Result[T]) OK() bool {
	return r.Kind == KindSuccess
}

// Message returns the error message for a failed result, or an empty string
func (r Result[T]) Message() string {
	if r.Kind != KindError || r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

////////////////////////////////////////////////////////////////////////////////
// JSON

// MarshalJSON encodes the value on success, otherwise an object with
// "need_country" and "city" or with "error"
func (r Result[T]) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case KindSuccess:
		return json.Marshal(r.Value)
	case KindNeedsCountry:
		return json.Marshal(struct {
			NeedCountry bool   `json:"need_country"`
			City        string `json:"city"`
		}{true, r.City})
	default:
		return json.Marshal(struct {
			Error string `json:"error"`
		}{r.Message()})
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindNeedsCountry:
		return "need_country"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}
