package main

import (
	"crypto/tls"
	"fmt"
	"os"

	// Packages
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	httpserver "github.com/mutablelogic/go-server/pkg/httpserver"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/httphandler"
	httphandler "github.com/mutablelogic/go-weather/pkg/httphandler"
	version "github.com/mutablelogic/go-weather/pkg/version"
)

type ServerCommands struct {
	// Commands
	RunServer RunServer `cmd:"" name:"run" help:"Run the chat server." group:"SERVER"`
}

type RunServer struct {
	Agent bool `name:"agent" help:"Answer with the Gemini language model and tools"`

	// TLS server options
	TLS struct {
		ServerName string `name:"name" help:"TLS server name"`
		CertFile   string `name:"cert" help:"TLS certificate file"`
		KeyFile    string `name:"key" help:"TLS key file"`
	} `embed:"" prefix:"tls."`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *RunServer) Run(ctx *Globals) error {
	chatter, err := ctx.Chatter(cmd.Agent)
	if err != nil {
		return err
	}
	defer chatter.Close()

	// Start the HTTP server and wait for shutdown
	return cmd.Serve(ctx, chatter, version.Version())
}

// Serve creates the httpserver instance, logs the startup banner, and
// blocks until context cancellation (e.g. SIGINT).
func (cmd *RunServer) Serve(ctx *Globals, chatter httphandler.Chatter, versionTag string) error {
	// Create the TLS config if TLS options are provided
	var tlsConfig *tls.Config
	if cmd.TLS.CertFile != "" || cmd.TLS.KeyFile != "" {
		var pemData [][]byte
		if cmd.TLS.CertFile != "" {
			certData, err := os.ReadFile(cmd.TLS.CertFile)
			if err != nil {
				return fmt.Errorf("failed to read TLS certificate: %w", err)
			}
			pemData = append(pemData, certData)
		}
		if cmd.TLS.KeyFile != "" {
			keyData, err := os.ReadFile(cmd.TLS.KeyFile)
			if err != nil {
				return fmt.Errorf("failed to read TLS key: %w", err)
			}
			pemData = append(pemData, keyData)
		}
		var err error
		tlsConfig, err = httpserver.TLSConfig(cmd.TLS.ServerName, false, pemData...)
		if err != nil {
			return fmt.Errorf("failed to create TLS config: %w", err)
		}
	}

	// Create the server, which serves the default mux
	var opts []httpserver.Opt
	if ctx.HTTP.Timeout > 0 {
		opts = append(opts, httpserver.WithReadTimeout(ctx.HTTP.Timeout), httpserver.WithWriteTimeout(ctx.HTTP.Timeout))
	}
	httpserver, err := httpserver.New(ctx.HTTP.Addr, tlsConfig, opts...)
	if err != nil {
		return err
	}

	// Create the HTTP router on the server mux and register the routes
	router, err := httprouter.NewRouter(ctx.ctx, httpserver.Router(), ctx.HTTP.Prefix, ctx.HTTP.Origin, "Weather Assistant", versionTag)
	if err != nil {
		return err
	}
	if err := cmd.Register(ctx, router, chatter); err != nil {
		return err
	}

	// Run the server
	ctx.log.Info().Str("addr", httpserver.Addr()).Str("prefix", ctx.HTTP.Prefix).Bool("agent", cmd.Agent).Msgf("%s@%s started", ctx.execName, versionTag)
	if err := httpserver.Run(ctx.ctx); err != nil {
		return err
	}

	// Return success
	ctx.log.Info().Msgf("%s@%s stopped", ctx.execName, versionTag)
	return nil
}

// Register adds the chat, history, page, metrics and OpenAPI routes to the
// router, and a catch-all for unknown paths
func (cmd *RunServer) Register(ctx *Globals, router *httprouter.Router, chatter httphandler.Chatter) error {
	if err := httphandler.RegisterHandlers(chatter, ctx.metrics, router); err != nil {
		return fmt.Errorf("handlers: %w", err)
	}
	if err := openapi.RegisterHandler(router); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	if err := router.RegisterCatchAll("/", false); err != nil {
		return fmt.Errorf("catchall: %w", err)
	}

	// Return success
	return nil
}
