package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	godotenv "github.com/joho/godotenv"
	config "github.com/mutablelogic/go-weather/pkg/config"
	logger "github.com/mutablelogic/go-weather/pkg/logger"
	metrics "github.com/mutablelogic/go-weather/pkg/metrics"
	version "github.com/mutablelogic/go-weather/pkg/version"
	zerolog "github.com/rs/zerolog"
	otel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Configuration
	Config string `name:"config" env:"WEATHER_CONFIG" help:"YAML configuration file" type:"path" optional:""`
	Store  string `name:"store" env:"WEATHER_STORE,WEATHER_MEMORY" help:"Session store: a JSON file path, file:<path>, sqlite:<path> or memory:" optional:""`
	Model  string `name:"model" env:"WEATHER_MODEL" help:"Gemini model name" optional:""`

	// API Keys
	GeminiAPIKey string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Google Gemini API key"`
	NewsAPIKey   string `name:"news-api-key" env:"NEWS_API_KEY" help:"NewsAPI key"`

	// HTTP server and client options
	HTTP struct {
		Addr    string        `name:"addr" env:"WEATHER_ADDR" default:"localhost:8084" help:"Server listen address"`
		Prefix  string        `name:"prefix" default:"/api" help:"Server path prefix"`
		Origin  string        `name:"origin" default:"" help:"Cross-origin protection (CSRF) origin, empty for same-origin"`
		Timeout time.Duration `name:"timeout" default:"60s" help:"Client and server request timeout"`
	} `embed:"" prefix:"http."`

	// Context
	ctx      context.Context
	execName string
	config   *config.Config
	log      zerolog.Logger
	tracer   trace.Tracer
	metrics  *metrics.Metrics
}

type CLI struct {
	Globals

	// Commands
	Chat    ChatCommand    `cmd:"" name:"chat" help:"Chat in the terminal, type exit or quit to stop." default:"1"`
	Ask     AskCommand     `cmd:"" name:"ask" help:"Answer a single question."`
	History HistoryCommand `cmd:"" name:"history" help:"Show or clear the conversation history."`
	ServerCommands
	Version VersionCommand `cmd:"" name:"version" help:"Print the version and exit."`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Environment variables are read from .env when present
	_ = godotenv.Load()

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Conversational weather assistant"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.execName = execName()

	// Load the configuration, flags override the file
	cfg, err := config.Load(cli.Config)
	cmd.FatalIfErrorf(err)
	if cli.Store != "" {
		cfg.Store = cli.Store
	}
	if cli.Model != "" {
		cfg.Model = cli.Model
	}
	if cli.Debug {
		cfg.Log.Level = "debug"
	}
	cli.Globals.config = cfg

	// Logger, tracer and metrics
	cli.Globals.log = logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	}).With().Str("version", version.Version()).Logger()
	cli.Globals.tracer = otel.Tracer(cli.Globals.execName)
	cli.Globals.metrics = metrics.New()

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
