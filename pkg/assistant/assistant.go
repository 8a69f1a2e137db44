/*
assistant answers a turn of the conversation without a language model. The
text is parsed for a location, a date and an intent, the intent selects a
single tool, and the tool result is rendered as the reply. The session
carries the location and date from one turn to the next.
*/
package assistant

import (
	"context"
	"fmt"
	"sync"
	"time"

	// Packages
	weather "github.com/mutablelogic/go-weather"
	format "github.com/mutablelogic/go-weather/pkg/format"
	logger "github.com/mutablelogic/go-weather/pkg/logger"
	metrics "github.com/mutablelogic/go-weather/pkg/metrics"
	parser "github.com/mutablelogic/go-weather/pkg/parser"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	service "github.com/mutablelogic/go-weather/pkg/service"
	session "github.com/mutablelogic/go-weather/pkg/session"
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Assistant struct {
	sync.Mutex
	service  *service.Service
	store    session.Store
	opts     parser.Options
	handlers map[parser.Intent]handler
	metrics  *metrics.Metrics
	log      zerolog.Logger
}

// handler calls the tool for an intent and renders the reply
type handler func(context.Context, parser.Args) (string, schema.Kind)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	outcomeMissingLocation = "missing_location"
	outcomeUnknown         = "unknown"
	outcomePanic           = "panic"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns an assistant which answers with the service and keeps the
// session in the store
func New(svc *service.Service, store session.Store, opts ...Opt) (*Assistant, error) {
	if svc == nil {
		return nil, weather.ErrBadParameter.With("service is required")
	}
	if store == nil {
		return nil, weather.ErrBadParameter.With("store is required")
	}
	self := &Assistant{
		service: svc,
		store:   store,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		if err := opt(self); err != nil {
			return nil, err
		}
	}

	// One handler per intent which calls a tool
	self.handlers = map[parser.Intent]handler{
		parser.CurrentWeather: self.current,
		parser.Forecast:       self.forecast,
		parser.Alerts:         self.alerts,
		parser.Clothing:       self.clothing,
		parser.AirQuality:     self.airQuality,
		parser.News:           self.news,
	}

	// Return success
	return self, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Chat answers a turn, loading the session from the store and saving it
// afterwards
func (a *Assistant) Chat(ctx context.Context, text string) (string, error) {
	a.Lock()
	defer a.Unlock()

	s, err := a.store.Load(ctx)
	if err != nil {
		return "", err
	}
	s, reply := a.RunOnce(ctx, s, text)
	if err := a.store.Save(ctx, s); err != nil {
		return reply, err
	}
	return reply, nil
}

// Session returns the stored session
func (a *Assistant) Session(ctx context.Context) (*session.Session, error) {
	a.Lock()
	defer a.Unlock()
	return a.store.Load(ctx)
}

// Reset clears the stored session
func (a *Assistant) Reset(ctx context.Context) error {
	a.Lock()
	defer a.Unlock()
	return a.store.Reset(ctx)
}

// RunOnce answers a turn and returns the updated session with the reply.
// The session passed in is not modified. A panic while answering returns
// the session unchanged with an error reply.
func (a *Assistant) RunOnce(ctx context.Context, s *session.Session, text string) (result *session.Session, reply string) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			a.log.Error().Interface("panic", r).Str("text", text).Msg("turn failed")
			a.metrics.Turn(parser.Unknown.String(), outcomePanic)
			result, reply = s, format.Failure(fmt.Errorf("%v", r))
		}
	}()

	// The history is listed, and the request is not recorded
	if parser.IsHistoryRequest(text) {
		if s == nil {
			return session.New(), format.History(nil)
		}
		return s, format.History(s.History)
	}

	// Resolve the location, date and intent against a copy of the session
	next := s.Clone()
	r := parser.Resolve(text, next)
	intent := parser.Classify(text)

	// Answer the turn
	var outcome string
	h, exists := a.handlers[intent]
	switch {
	case !exists:
		reply, outcome = format.Unknown(), outcomeUnknown
	case intent.NeedsLocation() && parser.IsPlaceholder(r.City):
		reply, outcome = format.MissingLocation(), outcomeMissingLocation
	default:
		var kind schema.Kind
		reply, kind = h(ctx, parser.BuildArgs(intent, r, text))
		if kind == schema.KindSuccess {
			r.Commit(intent, next, a.opts)
		}
		outcome = kind.String()
	}

	// Record the turn
	next.Append(text, reply)
	a.metrics.Turn(intent.String(), outcome)
	a.log.Debug().
		Str("intent", intent.String()).
		Str("location", r.Location()).
		Str("date", r.Date).
		Bool("carried", r.Carried).
		Str("outcome", outcome).
		Dur("duration", time.Since(start)).
		Msg("turn")

	// Return the updated session
	return next, reply
}

///////////////////////////////////////////////////////////////////////////////
// HANDLERS

func (a *Assistant) current(ctx context.Context, args parser.Args) (string, schema.Kind) {
	r := a.service.Current(ctx, args.Location)
	return format.Current(r), a.outcome(r.Kind, r.Err)
}

func (a *Assistant) forecast(ctx context.Context, args parser.Args) (string, schema.Kind) {
	window := format.Window{Day: args.DayIndex}
	if args.ExplicitDays {
		window.Days = args.Days
	}
	r := a.service.Forecast(ctx, args.Location, args.Days)
	return format.Forecast(r, window), a.outcome(r.Kind, r.Err)
}

func (a *Assistant) alerts(ctx context.Context, args parser.Args) (string, schema.Kind) {
	r := a.service.Alerts(ctx, args.Location)
	return format.Alerts(r), a.outcome(r.Kind, r.Err)
}

func (a *Assistant) clothing(ctx context.Context, args parser.Args) (string, schema.Kind) {
	r := a.service.Clothing(ctx, args.Location)
	return format.Clothing(r), a.outcome(r.Kind, r.Err)
}

func (a *Assistant) airQuality(ctx context.Context, args parser.Args) (string, schema.Kind) {
	r := a.service.AirQuality(ctx, args.Location)
	return format.AirQuality(r), a.outcome(r.Kind, r.Err)
}

func (a *Assistant) news(ctx context.Context, args parser.Args) (string, schema.Kind) {
	r := a.service.News(ctx, args.Country, args.Query)
	return format.News(r), a.outcome(r.Kind, r.Err)
}

// outcome logs a failed tool call and returns the kind
func (a *Assistant) outcome(kind schema.Kind, err error) schema.Kind {
	if kind == schema.KindError {
		a.log.Warn().Err(err).Msg("tool failed")
	}
	return kind
}
