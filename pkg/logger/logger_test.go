package logger_test

import (
	"bytes"
	"testing"

	// Packages
	logger "github.com/mutablelogic/go-weather/pkg/logger"
	zerolog "github.com/rs/zerolog"
	assert "github.com/stretchr/testify/assert"
)

func Test_logger_001(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(zerolog.DebugLevel, logger.ParseLevel("DEBUG"))
	assert.Equal(zerolog.WarnLevel, logger.ParseLevel("warning"))
	assert.Equal(zerolog.Disabled, logger.ParseLevel("off"))
	assert.Equal(zerolog.InfoLevel, logger.ParseLevel(""))
}

func Test_logger_002(t *testing.T) {
	assert := assert.New(t)
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "warn", Output: &buf})

	log.Info().Msg("hidden")
	assert.Empty(buf.String())

	log.Warn().Str("intent", "forecast").Msg("shown")
	assert.Contains(buf.String(), `"intent":"forecast"`)
	assert.Contains(buf.String(), `"service":"go-weather"`)
}
