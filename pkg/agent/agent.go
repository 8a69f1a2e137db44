/*
agent answers a turn of the conversation with a language model. The model
is given the history, the user text and the weather tools, and may call
the tools any number of times before it replies with text.
*/
package agent

import (
	"context"
	"sync"
	"time"

	// Packages
	weather "github.com/mutablelogic/go-weather"
	format "github.com/mutablelogic/go-weather/pkg/format"
	logger "github.com/mutablelogic/go-weather/pkg/logger"
	metrics "github.com/mutablelogic/go-weather/pkg/metrics"
	parser "github.com/mutablelogic/go-weather/pkg/parser"
	google "github.com/mutablelogic/go-weather/pkg/provider/google"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	session "github.com/mutablelogic/go-weather/pkg/session"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Generator sends a conversation to a model and appends the reply
type Generator interface {
	Generate(ctx context.Context, model string, conversation *schema.Conversation, opts ...google.Opt) (*schema.Message, *google.Usage, error)
}

type Agent struct {
	sync.Mutex
	generator    Generator
	toolkit      *tool.Toolkit
	store        session.Store
	model        string
	systemPrompt string
	temperature  float64
	retries      uint
	maxRounds    uint
	metrics      *metrics.Metrics
	log          zerolog.Logger
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultModel       = google.DefaultModel
	DefaultTemperature = 0.7
	DefaultRetries     = 2
	DefaultMaxRounds   = 8
)

const DefaultSystemPrompt = "You are a helpful weather assistant.\n" +
	"You can use the following tools:\n" +
	"- get_current_weather → for live temperature/windspeed\n" +
	"- get_forecast → for 1–7 day forecast\n" +
	"- clothing_suggestion → suggest clothes\n" +
	"- weather_alerts → check severe warnings\n" +
	"- air_quality → check the air quality index and pollutants\n" +
	"- weather_news → find weather news and headlines\n" +
	"Always call the right tool depending on the user request.\n" +
	"If location is missing, ask for it.\n" +
	"Before calling a tool, acknowledge it by saying something like \"Let me check that...\"\n"

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns an agent which answers with the generator and tools, and
// keeps the session in the store
func New(generator Generator, toolkit *tool.Toolkit, store session.Store, opts ...Opt) (*Agent, error) {
	if generator == nil {
		return nil, weather.ErrBadParameter.With("generator is required")
	}
	if toolkit == nil {
		return nil, weather.ErrBadParameter.With("toolkit is required")
	}
	if store == nil {
		return nil, weather.ErrBadParameter.With("store is required")
	}
	self := &Agent{
		generator:    generator,
		toolkit:      toolkit,
		store:        store,
		model:        DefaultModel,
		systemPrompt: DefaultSystemPrompt,
		temperature:  DefaultTemperature,
		retries:      DefaultRetries,
		maxRounds:    DefaultMaxRounds,
		log:          logger.Nop(),
	}
	for _, opt := range opts {
		if err := opt(self); err != nil {
			return nil, err
		}
	}

	// Return success
	return self, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Chat answers a turn, loading the session from the store and saving it
// afterwards
func (a *Agent) Chat(ctx context.Context, text string) (string, error) {
	a.Lock()
	defer a.Unlock()

	s, err := a.store.Load(ctx)
	if err != nil {
		return "", err
	}
	reply := a.RunOnce(ctx, s, text)
	if err := a.store.Save(ctx, s); err != nil {
		return reply, err
	}
	return reply, nil
}

// Session returns the stored session
func (a *Agent) Session(ctx context.Context) (*session.Session, error) {
	a.Lock()
	defer a.Unlock()
	return a.store.Load(ctx)
}

// Reset clears the stored session
func (a *Agent) Reset(ctx context.Context) error {
	a.Lock()
	defer a.Unlock()
	return a.store.Reset(ctx)
}

// RunOnce answers a turn and appends it to the session history. A failure
// of the model is rendered as the reply.
func (a *Agent) RunOnce(ctx context.Context, s *session.Session, text string) string {
	start := time.Now()
	if s == nil {
		s = session.New()
	}
	if s.History == nil {
		s.History = make([]session.Turn, 0)
	}

	// The history is listed, and the request is not recorded
	if parser.IsHistoryRequest(text) {
		return format.History(s.History)
	}

	// Ask the model
	conversation := conversationFromHistory(s.History)
	conversation.Append(*schema.NewMessage(schema.RoleUser, text))
	reply, rounds, err := a.generate(ctx, &conversation)
	outcome := metrics.OutcomeSuccess
	if err != nil {
		a.log.Warn().Err(err).Uint("rounds", rounds).Msg("generate failed")
		reply, outcome = format.Failure(err), metrics.OutcomeError
	}

	// Record the turn
	s.Append(text, reply)
	a.metrics.Rounds(int(rounds))
	a.metrics.Turn(intentAgent, outcome)
	a.log.Debug().
		Uint("rounds", rounds).
		Str("outcome", outcome).
		Dur("duration", time.Since(start)).
		Msg("turn")

	// Return the reply
	return reply
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// generate calls the model until it replies without tool calls, and returns
// the reply with the number of rounds
func (a *Agent) generate(ctx context.Context, conversation *schema.Conversation) (string, uint, error) {
	opts := []google.Opt{
		google.WithSystemPrompt(a.systemPrompt),
		google.WithTemperature(a.temperature),
		google.WithRetries(a.retries),
		google.WithTools(a.toolkit.Tools()...),
	}
	for round := uint(1); round <= a.maxRounds; round++ {
		message, usage, err := a.generator.Generate(ctx, a.model, conversation, opts...)
		if err != nil {
			return "", round, err
		}
		if usage != nil {
			a.log.Debug().Uint("input_tokens", usage.InputTokens).Uint("output_tokens", usage.OutputTokens).Uint("round", round).Msg("usage")
		}

		// Text without tool calls is the reply
		calls := message.ToolCalls()
		if len(calls) == 0 {
			if reply := message.Text(); reply != "" {
				return reply, round, nil
			}
			return format.Unknown(), round, nil
		}

		// Run the tools and return the results to the model
		results := make([]schema.ContentBlock, 0, len(calls))
		for _, call := range calls {
			results = append(results, a.run(ctx, call))
		}
		conversation.Append(schema.Message{Role: schema.RoleUser, Content: results})
	}
	return "", a.maxRounds, weather.ErrInternalServerError.Withf("no reply after %d tool rounds", a.maxRounds)
}

// run calls a tool and returns the result as a content block
func (a *Agent) run(ctx context.Context, call schema.ToolCall) schema.ContentBlock {
	a.log.Debug().Str("tool", a.toolkit.Feedback(call)).RawJSON("input", rawJSON(call.Input)).Msg("tool call")
	result, err := a.toolkit.Run(ctx, call.Name, call.Input)
	if err != nil {
		a.log.Warn().Err(err).Str("tool", call.Name).Msg("tool failed")
		return schema.NewToolError(call.ID, call.Name, err)
	}
	return schema.NewToolResult(call.ID, call.Name, result)
}
