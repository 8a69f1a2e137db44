package httphandler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	// Package
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	jsonschema "github.com/mutablelogic/go-server/pkg/jsonschema"
	weather "github.com/mutablelogic/go-weather"
	metrics "github.com/mutablelogic/go-weather/pkg/metrics"
	session "github.com/mutablelogic/go-weather/pkg/session"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Chatter answers turns of the single conversation
type Chatter interface {
	// Answer a turn and persist the session
	Chat(ctx context.Context, text string) (string, error)

	// Return the stored session
	Session(ctx context.Context) (*session.Session, error)

	// Clear the stored session
	Reset(ctx context.Context) error
}

// Router registers path items relative to its prefix
type Router interface {
	Prefix() string
	RegisterPath(path string, params *jsonschema.Schema, pathitem httprequest.PathItem) error
}

var _ Router = (*httprouter.Router)(nil)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RegisterHandlers registers the chat, history and index handlers, and the
// metrics handler when metrics is not nil
func RegisterHandlers(chatter Chatter, m *metrics.Metrics, router Router) error {
	var result error

	// Convenience function to register a handler and accumulate any errors
	register := func(path string, pathitem httprequest.PathItem) {
		result = errors.Join(result, router.RegisterPath(path, nil, pathitem))
	}

	// Register handlers
	register(ChatHandler(chatter))
	register(HistoryHandler(chatter))
	register(IndexHandler(router.Prefix()))
	if m != nil {
		register(MetricsHandler(m))
	}

	// Return any errors
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// indexPath returns the page path for a router prefix, with a trailing slash
// so relative links resolve under the prefix
func indexPath(prefix string) string {
	return strings.TrimSuffix(prefix, "/") + "/"
}

// httpErr converts a weather.Err to an httpresponse.Err, preserving the
// original error message. Unknown error codes map to 500.
func httpErr(err error) error {
	var code weather.Err
	if !errors.As(err, &code) {
		return err
	}
	switch code {
	case weather.ErrNotFound:
		return httpresponse.ErrNotFound.With(err)
	case weather.ErrBadParameter:
		return httpresponse.ErrBadRequest.With(err)
	case weather.ErrConflict:
		return httpresponse.ErrConflict.With(err)
	case weather.ErrNotImplemented:
		return httpresponse.ErrNotImplemented.With(err)
	case weather.ErrTimeout:
		return httpresponse.Err(http.StatusGatewayTimeout).With(err)
	case weather.ErrUpstream:
		return httpresponse.Err(http.StatusBadGateway).With(err)
	default:
		return httpresponse.ErrInternalError.With(err)
	}
}
