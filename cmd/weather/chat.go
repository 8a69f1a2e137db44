package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	otel "github.com/mutablelogic/go-client/pkg/otel"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCommand struct {
	Agent  bool `name:"agent" help:"Answer with the Gemini language model and tools"`
	Remote bool `name:"remote" help:"Send turns to a running server"`
}

// turnFunc answers a single turn
type turnFunc func(ctx context.Context, text string) (string, error)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	replyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var exitCommands = []string{"exit", "quit"}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ChatCommand) Run(ctx *Globals) (err error) {
	turn, done, err := ctx.turn(cmd.Agent, cmd.Remote)
	if err != nil {
		return err
	}
	defer done()

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ChatCommand")
	defer func() { endSpan(err) }()

	fmt.Println(titleStyle.Render("🌦️ Weather Assistant") + " (type 'exit' or 'quit' to stop)")
	return repl(parent, os.Stdin, os.Stdout, turn)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// repl reads lines from r until end of input, an exit command or the
// context is cancelled, and writes each reply to w
func repl(ctx context.Context, r io.Reader, w io.Writer, turn turnFunc) error {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, promptStyle.Render("You: "))
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}
		text := strings.TrimSpace(scanner.Text())
		switch {
		case text == "":
			continue
		case isExit(text):
			return nil
		}

		reply, err := turn(ctx, text)
		if ctx.Err() != nil {
			return nil
		} else if err != nil {
			fmt.Fprintln(w, errorStyle.Render("❌ "+err.Error()))
			continue
		}
		fmt.Fprintln(w, replyStyle.Render(reply))
	}
}

func isExit(text string) bool {
	for _, cmd := range exitCommands {
		if strings.EqualFold(text, cmd) {
			return true
		}
	}
	return false
}

// turn returns a function which answers a turn locally or with a server,
// and a function to release resources
func (g *Globals) turn(useAgent, remote bool) (turnFunc, func(), error) {
	if remote {
		client, err := g.Client()
		if err != nil {
			return nil, nil, err
		}
		return func(ctx context.Context, text string) (string, error) {
			response, err := client.Chat(ctx, text)
			if err != nil {
				return "", err
			}
			return response.Reply, nil
		}, func() {}, nil
	}

	chatter, err := g.Chatter(useAgent)
	if err != nil {
		return nil, nil, err
	}
	return chatter.Chat, func() {
		if err := chatter.Close(); err != nil {
			g.log.Warn().Err(err).Msg("close store")
		}
	}, nil
}
