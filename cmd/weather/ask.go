package main

import (
	"fmt"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type AskCommand struct {
	Text   string `arg:"" help:"Question, e.g. \"What's the weather in Colombo, Sri Lanka?\""`
	Agent  bool   `name:"agent" help:"Answer with the Gemini language model and tools"`
	Remote bool   `name:"remote" help:"Send the question to a running server"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *AskCommand) Run(ctx *Globals) (err error) {
	turn, done, err := ctx.turn(cmd.Agent, cmd.Remote)
	if err != nil {
		return err
	}
	defer done()

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "AskCommand",
		attribute.Bool("agent", cmd.Agent),
		attribute.Bool("remote", cmd.Remote),
	)
	defer func() { endSpan(err) }()

	reply, err := turn(parent, cmd.Text)
	if err != nil {
		return err
	}
	fmt.Println(reply)
	return nil
}
