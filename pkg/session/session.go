package session

import (
	"context"
	"slices"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// INTERFACE

// Store persists the single session record. Load returns an empty session
// when nothing has been stored yet or the stored record cannot be decoded.
type Store interface {
	// Load the session, or an empty session
	Load(ctx context.Context) (*Session, error)

	// Save a snapshot of the session
	Save(ctx context.Context, session *Session) error

	// Reset the stored session to the empty default
	Reset(ctx context.Context) error

	// Release any resources
	Close() error
}

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Turn is one exchange in the conversation
type Turn struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// Session is the memory carried from one turn to the next
type Session struct {
	History      []Turn  `json:"history"`
	LastLocation *string `json:"last_location"`
	LastDate     *string `json:"last_date"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns an empty session
func New() *Session {
	return &Session{
		History: make([]Turn, 0),
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Clone returns a deep copy of the session, so a turn can mutate the copy
// and leave the original untouched on failure.
func (s *Session) Clone() *Session {
	if s == nil {
		return New()
	}
	clone := &Session{
		History: slices.Clone(s.History),
	}
	if clone.History == nil {
		clone.History = make([]Turn, 0)
	}
	if s.LastLocation != nil {
		clone.LastLocation = types.Ptr(*s.LastLocation)
	}
	if s.LastDate != nil {
		clone.LastDate = types.Ptr(*s.LastDate)
	}
	return clone
}

// Append records a completed turn
func (s *Session) Append(user, assistant string) {
	s.History = append(s.History, Turn{User: user, Assistant: assistant})
}

// Location returns the last location, or an empty string
func (s *Session) Location() string {
	if s == nil || s.LastLocation == nil {
		return ""
	}
	return *s.LastLocation
}

// Date returns the last relative date, or an empty string
func (s *Session) Date() string {
	if s == nil || s.LastDate == nil {
		return ""
	}
	return *s.LastDate
}

// SetLocation overwrites the last location. An empty value is ignored,
// the last location is never cleared.
func (s *Session) SetLocation(location string) {
	if location != "" {
		s.LastLocation = types.Ptr(location)
	}
}

// SetDate overwrites the last relative date. An empty value clears it.
func (s *Session) SetDate(date string) {
	if date == "" {
		s.LastDate = nil
	} else {
		s.LastDate = types.Ptr(date)
	}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s Session) String() string {
	return types.Stringify(s)
}
