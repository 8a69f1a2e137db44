package google_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-weather"
	google "github.com/mutablelogic/go-weather/pkg/provider/google"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

var apiKey string

func TestMain(m *testing.M) {
	apiKey = os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	os.Exit(m.Run())
}

const textResponse = `{"candidates":[{"content":{"role":"model","parts":[{"text":"It is sunny."}]},"finishReason":"STOP"}],"usageMetadata":{"promptTokenCount":10,"candidatesTokenCount":4}}`

// newClient returns a client for a server which fails the first n requests
// with the given status, then replies with body
func newClient(t *testing.T, failures int32, status int, body string) (*google.Client, *atomic.Int32, *map[string]any) {
	t.Helper()
	var count atomic.Int32
	var last map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := count.Add(1)
		assert.Equal(t, "/models/gemini-2.5-pro:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		json.NewDecoder(r.Body).Decode(&last)
		w.Header().Set("Content-Type", "application/json")
		if n <= failures {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":{"code":500,"message":"failed"}}`))
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	c, err := google.New("test-key", client.OptEndpoint(server.URL))
	require.NoError(t, err)
	return c, &count, &last
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_client_001(t *testing.T) {
	assert := assert.New(t)
	_, err := google.New("")
	assert.ErrorIs(err, weather.ErrBadParameter)

	c, err := google.New("test-key")
	assert.NoError(err)
	assert.Equal("gemini", c.Name())
}

func Test_client_002(t *testing.T) {
	assert := assert.New(t)
	c, count, last := newClient(t, 0, 0, textResponse)

	conversation := schema.Conversation{schema.NewMessage(schema.RoleUser, "Weather in Paris?")}
	message, usage, err := c.Generate(context.TODO(), "", &conversation, google.WithSystemPrompt("Be brief."), google.WithTemperature(0.7))
	assert.NoError(err)
	assert.Equal("It is sunny.", message.Text())
	assert.Equal(uint(10), usage.InputTokens)
	assert.Equal(uint(4), usage.OutputTokens)
	assert.Len(conversation, 2)
	assert.Equal(int32(1), count.Load())
	assert.Equal(0.7, (*last)["generationConfig"].(map[string]any)["temperature"])
}

func Test_client_003(t *testing.T) {
	// Server errors are retried
	assert := assert.New(t)
	c, count, _ := newClient(t, 2, http.StatusServiceUnavailable, textResponse)

	conversation := schema.Conversation{schema.NewMessage(schema.RoleUser, "Hi")}
	message, _, err := c.Generate(context.TODO(), google.DefaultModel, &conversation, google.WithRetries(2))
	assert.NoError(err)
	assert.Equal("It is sunny.", message.Text())
	assert.Equal(int32(3), count.Load())
}

func Test_client_004(t *testing.T) {
	// Retries are exhausted, and client errors are not retried
	assert := assert.New(t)
	c, count, _ := newClient(t, 5, http.StatusTooManyRequests, textResponse)
	conversation := schema.Conversation{schema.NewMessage(schema.RoleUser, "Hi")}
	_, _, err := c.Generate(context.TODO(), "", &conversation, google.WithRetries(1))
	assert.ErrorIs(err, weather.ErrUpstream)
	assert.Equal(int32(2), count.Load())
	assert.Len(conversation, 1)

	c, count, _ = newClient(t, 5, http.StatusBadRequest, textResponse)
	_, _, err = c.Generate(context.TODO(), "", &conversation, google.WithRetries(2))
	assert.Error(err)
	assert.Equal(int32(1), count.Load())
}

func Test_client_005(t *testing.T) {
	// Blocked prompts are errors
	assert := assert.New(t)
	c, _, _ := newClient(t, 0, 0, `{"promptFeedback":{"blockReason":"SAFETY"}}`)
	conversation := schema.Conversation{schema.NewMessage(schema.RoleUser, "Hi")}
	_, _, err := c.Generate(context.TODO(), "", &conversation)
	assert.ErrorIs(err, weather.ErrUpstream)

	_, _, err = c.Generate(context.TODO(), "", &schema.Conversation{})
	assert.ErrorIs(err, weather.ErrBadParameter)
}

func Test_client_006(t *testing.T) {
	// Live request
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set, skipping")
	}
	assert := assert.New(t)
	c, err := google.New(apiKey)
	require.NoError(t, err)
	conversation := schema.Conversation{schema.NewMessage(schema.RoleUser, "Reply with the single word: hello")}
	message, _, err := c.Generate(context.TODO(), "gemini-2.5-flash", &conversation)
	assert.NoError(err)
	assert.NotEmpty(message.Text())
}
