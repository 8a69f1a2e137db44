package session

import (
	"strings"

	// Packages
	weather "github.com/mutablelogic/go-weather"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	schemeFile   = "file"
	schemeSQLite = "sqlite"
	schemeMemory = "memory"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Open returns a store for the given location. The location is a path to a
// JSON file, or a path prefixed with "file:", "sqlite:" or the bare value
// "memory:" for a store which is not persisted.
func Open(location string) (Store, error) {
	scheme, path, ok := strings.Cut(location, ":")
	if !ok || len(scheme) == 1 {
		// No scheme, or a Windows drive letter
		return NewFileStore(location)
	}
	switch strings.ToLower(scheme) {
	case schemeFile:
		return NewFileStore(path)
	case schemeSQLite:
		return NewSQLiteStore(path)
	case schemeMemory:
		return NewMemoryStore(), nil
	default:
		return nil, weather.ErrBadParameter.Withf("unsupported store %q", scheme)
	}
}
