package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	// Packages
	weather "github.com/mutablelogic/go-weather"

	// SQLite driver
	_ "modernc.org/sqlite"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// SQLiteStore keeps the session as a single JSON row in a SQLite database
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	sqliteSchema = `CREATE TABLE IF NOT EXISTS session_memory (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		data TEXT NOT NULL,
		modified TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`
	sqliteSelect = `SELECT data FROM session_memory WHERE id = 1`
	sqliteUpsert = `INSERT INTO session_memory (id, data, modified) VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, modified = excluded.modified`
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewSQLiteStore opens (or creates) the database at path and ensures the
// schema exists
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, weather.ErrBadParameter.With("path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, weather.ErrInternalServerError.Withf("open: %v", err)
	}

	// One connection serialises writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, weather.ErrInternalServerError.Withf("pragma: %v", err)
		}
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, weather.ErrInternalServerError.Withf("schema: %v", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Load reads the stored session. A missing row or an undecodable record
// yields an empty session and no error.
func (s *SQLiteStore) Load(ctx context.Context) (*Session, error) {
	var data string
	if err := s.db.QueryRowContext(ctx, sqliteSelect).Scan(&data); errors.Is(err, sql.ErrNoRows) {
		return New(), nil
	} else if err != nil {
		return nil, weather.ErrInternalServerError.Withf("select: %v", err)
	}
	return decode([]byte(data)), nil
}

// Save upserts the session record
func (s *SQLiteStore) Save(ctx context.Context, session *Session) error {
	if session == nil {
		return weather.ErrBadParameter.With("session is nil")
	}
	data, err := json.Marshal(session)
	if err != nil {
		return weather.ErrInternalServerError.Withf("marshal: %v", err)
	}
	if _, err := s.db.ExecContext(ctx, sqliteUpsert, string(data)); err != nil {
		return weather.ErrInternalServerError.Withf("upsert: %v", err)
	}
	return nil
}

// Reset stores an empty session
func (s *SQLiteStore) Reset(ctx context.Context) error {
	return s.Save(ctx, New())
}
