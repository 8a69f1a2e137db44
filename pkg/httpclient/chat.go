package httpclient

import (
	"context"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-weather"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Chat sends a turn and returns the reply
func (c *Client) Chat(ctx context.Context, text string) (*schema.ChatResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, weather.ErrBadParameter.With("text is required")
	}

	// Create request
	req, err := client.NewJSONRequest(schema.ChatRequest{Text: text})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.ChatResponse
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("chat")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// History returns the conversation history
func (c *Client) History(ctx context.Context) (*schema.HistoryResponse, error) {
	var response schema.HistoryResponse
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("history")); err != nil {
		return nil, err
	}
	return &response, nil
}

// Reset clears the conversation history and memory
func (c *Client) Reset(ctx context.Context) error {
	return c.DoWithContext(ctx, client.MethodDelete, nil, client.OptPath("history"))
}
