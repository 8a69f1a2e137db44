package httphandler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	// Packages
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	weather "github.com/mutablelogic/go-weather"
	httphandler "github.com/mutablelogic/go-weather/pkg/httphandler"
	metrics "github.com/mutablelogic/go-weather/pkg/metrics"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	session "github.com/mutablelogic/go-weather/pkg/session"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// MOCK CHATTER

// mockChatter echoes the text and records it in the store
type mockChatter struct {
	store session.Store
	err   error
}

func (c *mockChatter) Chat(ctx context.Context, text string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	s, err := c.store.Load(ctx)
	if err != nil {
		return "", err
	}
	reply := "echo: " + text
	s.Append(text, reply)
	s.SetLocation("Paris")
	return reply, c.store.Save(ctx, s)
}

func (c *mockChatter) Session(ctx context.Context) (*session.Session, error) {
	return c.store.Load(ctx)
}

func (c *mockChatter) Reset(ctx context.Context) error {
	return c.store.Reset(ctx)
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

func newRouter(t *testing.T, prefix string) *httprouter.Router {
	t.Helper()
	router, err := httprouter.NewRouter(context.Background(), http.NewServeMux(), prefix, "", "Weather Assistant", "v0")
	if err != nil {
		t.Fatal(err)
	}
	return router
}

func serveMux(t *testing.T, chatter httphandler.Chatter) *httprouter.Router {
	t.Helper()
	router := newRouter(t, "/")
	if err := httphandler.RegisterHandlers(chatter, metrics.New(), router); err != nil {
		t.Fatal(err)
	}
	return router
}

func do(mux http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	mux.ServeHTTP(w, r)
	return w
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestChat_OK(t *testing.T) {
	assert := assert.New(t)
	mux := serveMux(t, &mockChatter{store: session.NewMemoryStore()})

	w := do(mux, http.MethodPost, "/chat", `{"text":"  weather in Paris  "}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp schema.ChatResponse
	assert.NoError(json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal("weather in Paris", resp.Text)
	assert.Equal("echo: weather in Paris", resp.Reply)
}

func TestChat_EmptyText(t *testing.T) {
	mux := serveMux(t, &mockChatter{store: session.NewMemoryStore()})
	w := do(mux, http.MethodPost, "/chat", `{"text":"   "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestChat_Error(t *testing.T) {
	mux := serveMux(t, &mockChatter{store: session.NewMemoryStore(), err: weather.ErrTimeout.With("gemini")})
	w := do(mux, http.MethodPost, "/chat", `{"text":"hello"}`)
	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d: %s", w.Code, w.Body.String())
	}
}

func TestChat_MethodNotAllowed(t *testing.T) {
	mux := serveMux(t, &mockChatter{store: session.NewMemoryStore()})
	w := do(mux, http.MethodGet, "/chat", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}

func TestHistory_OK(t *testing.T) {
	assert := assert.New(t)
	mux := serveMux(t, &mockChatter{store: session.NewMemoryStore()})

	// Empty history
	w := do(mux, http.MethodGet, "/history", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp schema.HistoryResponse
	assert.NoError(json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(0, resp.Count)
	assert.Nil(resp.LastLocation)

	// Two turns
	do(mux, http.MethodPost, "/chat", `{"text":"one"}`)
	do(mux, http.MethodPost, "/chat", `{"text":"two"}`)
	w = do(mux, http.MethodGet, "/history", "")
	assert.NoError(json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(2, resp.Count)
	assert.Equal("two", resp.History[1].User)
	assert.Equal("Paris", *resp.LastLocation)
}

func TestHistory_Delete(t *testing.T) {
	assert := assert.New(t)
	store := session.NewMemoryStore()
	mux := serveMux(t, &mockChatter{store: store})

	do(mux, http.MethodPost, "/chat", `{"text":"one"}`)
	w := do(mux, http.MethodDelete, "/history", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	s, err := store.Load(context.Background())
	assert.NoError(err)
	assert.Empty(s.History)
	assert.Nil(s.LastLocation)
}

func TestIndex_OK(t *testing.T) {
	mux := serveMux(t, &mockChatter{store: session.NewMemoryStore()})
	w := do(mux, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "Weather Assistant") {
		t.Fatal("expected the chat page")
	}

	w = do(mux, http.MethodGet, "/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestMetrics_OK(t *testing.T) {
	mux := serveMux(t, &mockChatter{store: session.NewMemoryStore()})
	w := do(mux, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRouter_Prefix(t *testing.T) {
	assert := assert.New(t)
	router := newRouter(t, "/api")
	store := session.NewMemoryStore()
	if err := httphandler.RegisterHandlers(&mockChatter{store: store}, nil, router); err != nil {
		t.Fatal(err)
	}

	// Handlers are served under the prefix
	w := do(router, http.MethodPost, "/api/chat", `{"text":"weather in Paris"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	w = do(router, http.MethodGet, "/api/history", "")
	assert.Equal(http.StatusOK, w.Code)
	w = do(router, http.MethodGet, "/api/", "")
	assert.Equal(http.StatusOK, w.Code)
	assert.Contains(w.Body.String(), "Weather Assistant")
	w = do(router, http.MethodGet, "/chat", "")
	assert.Equal(http.StatusNotFound, w.Code)

	// Metrics are only registered when provided
	w = do(router, http.MethodGet, "/api/metrics", "")
	assert.Equal(http.StatusNotFound, w.Code)

	// Paths are recorded in the OpenAPI document
	paths := router.Spec().Paths.MapOfPathItemValues
	assert.Contains(paths, "/api/chat")
	assert.Contains(paths, "/api/history")
	assert.Contains(paths, "/api/")
	assert.NotNil(paths["/api/chat"].Post)
	assert.NotNil(paths["/api/history"].Delete)
}

func TestRouter_Conflict(t *testing.T) {
	router := newRouter(t, "/")
	chatter := &mockChatter{store: session.NewMemoryStore()}
	if err := httphandler.RegisterHandlers(chatter, nil, router); err != nil {
		t.Fatal(err)
	}
	if err := httphandler.RegisterHandlers(chatter, nil, router); err == nil {
		t.Fatal("expected an error registering the handlers twice")
	}
}
