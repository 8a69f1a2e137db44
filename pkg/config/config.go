/*
config reads the optional YAML configuration file. Values missing from the
file keep their defaults.

	model: gemini-2.5-pro
	temperature: 0.7
	retries: 2
	max_rounds: 8
	refresh_carried_location: false
	store: memory.json
	timeouts:
	  geocode: 10s
	  fetch: 20s
	log:
	  level: info
	  pretty: true
*/
package config

import (
	"os"
	"time"

	// Packages
	weather "github.com/mutablelogic/go-weather"
	agent "github.com/mutablelogic/go-weather/pkg/agent"
	geocode "github.com/mutablelogic/go-weather/pkg/geocode"
	openmeteo "github.com/mutablelogic/go-weather/pkg/openmeteo"
	parser "github.com/mutablelogic/go-weather/pkg/parser"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Config struct {
	Model                  string   `yaml:"model"`
	SystemPrompt           string   `yaml:"system_prompt"`
	Temperature            float64  `yaml:"temperature"`
	Retries                uint     `yaml:"retries"`
	MaxRounds              uint     `yaml:"max_rounds"`
	RefreshCarriedLocation bool     `yaml:"refresh_carried_location"`
	Store                  string   `yaml:"store"`
	Timeouts               Timeouts `yaml:"timeouts"`
	Log                    Log      `yaml:"log"`
}

type Timeouts struct {
	Geocode time.Duration `yaml:"geocode"`
	Fetch   time.Duration `yaml:"fetch"`
}

type Log struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultStore = "memory.json"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Defaults returns the configuration used when there is no file
func Defaults() *Config {
	return &Config{
		Model:        agent.DefaultModel,
		SystemPrompt: agent.DefaultSystemPrompt,
		Temperature:  agent.DefaultTemperature,
		Retries:      agent.DefaultRetries,
		MaxRounds:    agent.DefaultMaxRounds,
		Store:        DefaultStore,
		Timeouts: Timeouts{
			Geocode: geocode.DefaultTimeout,
			Fetch:   openmeteo.DefaultTimeout,
		},
		Log: Log{
			Level:  "info",
			Pretty: true,
		},
	}
}

// Load reads the file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	config := Defaults()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, weather.ErrNotFound.Withf("config: %v", err)
	}
	if err := config.Apply(data); err != nil {
		return nil, err
	}
	return config, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Apply decodes YAML over the current values and validates the result
func (c *Config) Apply(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return weather.ErrBadParameter.Withf("config: %v", err)
	}
	return c.Validate()
}

// Validate returns an error for values out of range
func (c *Config) Validate() error {
	switch {
	case c.Temperature < 0 || c.Temperature > 2:
		return weather.ErrBadParameter.With("config: temperature must be between 0.0 and 2.0")
	case c.MaxRounds == 0:
		return weather.ErrBadParameter.With("config: max_rounds must be at least 1")
	case c.Timeouts.Geocode <= 0 || c.Timeouts.Fetch <= 0:
		return weather.ErrBadParameter.With("config: timeouts must be positive")
	case c.Store == "":
		return weather.ErrBadParameter.With("config: store is required")
	}
	return nil
}

// Options returns the context carrying options
func (c *Config) Options() parser.Options {
	return parser.Options{RefreshCarriedLocation: c.RefreshCarriedLocation}
}
