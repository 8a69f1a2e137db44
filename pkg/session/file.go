package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	// Packages
	weather "github.com/mutablelogic/go-weather"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DirPerm  os.FileMode = 0o700 // Directory permission for the memory file
	FilePerm os.FileMode = 0o600 // File permission for the memory file
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// FileStore keeps the session as a single JSON file.
// It is safe for concurrent use.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

var _ Store = (*FileStore)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewFileStore creates a file-backed store at the given path. The parent
// directory is created if it does not exist.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, weather.ErrBadParameter.With("path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return nil, weather.ErrInternalServerError.Withf("mkdir: %v", err)
	}
	return &FileStore{path: path}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Path returns the path of the memory file
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the session from disk. A missing or corrupt file yields an
// empty session and no error.
func (f *FileStore) Load(_ context.Context) (*Session, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	} else if err != nil {
		return nil, weather.ErrInternalServerError.Withf("read: %v", err)
	}
	return decode(data), nil
}

// Save writes the session to disk
func (f *FileStore) Save(_ context.Context, s *Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.write(s)
}

// Reset overwrites the file with an empty session
func (f *FileStore) Reset(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.write(New())
}

// Close is a no-op for the file store
func (f *FileStore) Close() error {
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// write serialises the session and replaces the file atomically
func (f *FileStore) write(s *Session) error {
	if s == nil {
		return weather.ErrBadParameter.With("session is nil")
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return weather.ErrInternalServerError.Withf("marshal: %v", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return weather.ErrInternalServerError.Withf("write: %v", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return weather.ErrInternalServerError.Withf("rename: %v", err)
	}
	return nil
}

// decode unmarshals a stored record, falling back to an empty session
func decode(data []byte) *Session {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return New()
	}
	if s.History == nil {
		s.History = make([]Turn, 0)
	}
	return &s
}
