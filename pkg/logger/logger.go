// Package logger provides structured logging for the assistant
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	// Packages
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Config holds logger configuration
type Config struct {
	Level  string    // debug, info, warn, error
	Pretty bool      // console output for development
	Output io.Writer // defaults to stderr
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	serviceName = "go-weather"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a structured logger
func New(cfg Config) zerolog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.Kitchen,
		}
	}
	return zerolog.New(output).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}

// Nop returns a logger which discards everything
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ParseLevel returns the level for a name, defaulting to info
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "none":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
