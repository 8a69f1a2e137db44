package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	// Packages
	weather "github.com/mutablelogic/go-weather"
	agent "github.com/mutablelogic/go-weather/pkg/agent"
	config "github.com/mutablelogic/go-weather/pkg/config"
	assert "github.com/stretchr/testify/assert"
)

func Test_config_001(t *testing.T) {
	assert := assert.New(t)
	c, err := config.Load("")
	assert.NoError(err)
	assert.Equal(agent.DefaultModel, c.Model)
	assert.Equal(agent.DefaultSystemPrompt, c.SystemPrompt)
	assert.Equal(0.7, c.Temperature)
	assert.Equal(uint(8), c.MaxRounds)
	assert.Equal(10*time.Second, c.Timeouts.Geocode)
	assert.Equal(20*time.Second, c.Timeouts.Fetch)
	assert.False(c.Options().RefreshCarriedLocation)
	assert.NoError(c.Validate())
}

func Test_config_002(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "weather.yaml")
	assert.NoError(os.WriteFile(path, []byte(`
model: gemini-2.5-flash
temperature: 0.2
refresh_carried_location: true
store: sqlite:memory.db
timeouts:
  fetch: 5s
log:
  level: debug
`), 0600))

	c, err := config.Load(path)
	assert.NoError(err)
	assert.Equal("gemini-2.5-flash", c.Model)
	assert.Equal(0.2, c.Temperature)
	assert.True(c.Options().RefreshCarriedLocation)
	assert.Equal("sqlite:memory.db", c.Store)
	assert.Equal(5*time.Second, c.Timeouts.Fetch)
	assert.Equal(10*time.Second, c.Timeouts.Geocode)
	assert.Equal("debug", c.Log.Level)
	assert.True(c.Log.Pretty)
	assert.Equal(agent.DefaultSystemPrompt, c.SystemPrompt)
}

func Test_config_003(t *testing.T) {
	assert := assert.New(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(err, weather.ErrNotFound)

	c := config.Defaults()
	assert.ErrorIs(c.Apply([]byte("temperature: 3")), weather.ErrBadParameter)

	c = config.Defaults()
	assert.ErrorIs(c.Apply([]byte("max_rounds: 0")), weather.ErrBadParameter)

	c = config.Defaults()
	assert.ErrorIs(c.Apply([]byte("model: [")), weather.ErrBadParameter)
}
