package session

import (
	"context"
	"sync"

	// Packages
	weather "github.com/mutablelogic/go-weather"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// MemoryStore keeps the session in process memory only.
// It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	session *Session
}

var _ Store = (*MemoryStore)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewMemoryStore creates a store holding an empty session
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		session: New(),
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Load returns a copy of the stored session
func (m *MemoryStore) Load(_ context.Context) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Clone(), nil
}

// Save stores a copy of the session
func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	if s == nil {
		return weather.ErrBadParameter.With("session is nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = s.Clone()
	return nil
}

// Reset replaces the stored session with an empty one
func (m *MemoryStore) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = New()
	return nil
}

// Close is a no-op for the memory store
func (m *MemoryStore) Close() error {
	return nil
}
