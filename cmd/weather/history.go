package main

import (
	"fmt"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	session "github.com/mutablelogic/go-weather/pkg/session"
	table "github.com/mutablelogic/go-weather/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type HistoryCommand struct {
	Reset  bool `name:"reset" help:"Clear the history and the remembered location and date"`
	Remote bool `name:"remote" help:"Use a running server"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *HistoryCommand) Run(ctx *Globals) (err error) {
	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "HistoryCommand")
	defer func() { endSpan(err) }()

	var s *session.Session
	if cmd.Remote {
		client, err := ctx.Client()
		if err != nil {
			return err
		}
		if cmd.Reset {
			return client.Reset(parent)
		}
		response, err := client.History(parent)
		if err != nil {
			return err
		}
		s = &session.Session{History: response.History, LastLocation: response.LastLocation, LastDate: response.LastDate}
	} else {
		store, err := session.Open(ctx.config.Store)
		if err != nil {
			return err
		}
		defer store.Close()
		if cmd.Reset {
			return store.Reset(parent)
		}
		if s, err = store.Load(parent); err != nil {
			return err
		}
	}

	// Print the history and memory
	if len(s.History) == 0 {
		fmt.Println("No chat history yet.")
	} else {
		fmt.Println(table.Render(table.History(s.History)))
	}
	if location := s.Location(); location != "" {
		fmt.Println("Last location:", location)
	}
	if date := s.Date(); date != "" {
		fmt.Println("Last date:", date)
	}
	return nil
}
