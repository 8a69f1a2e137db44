package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Message is a message exchanged with a language model
type Message struct {
	Role    string         `json:"role"`    // "user", "assistant", "system"
	Content []ContentBlock `json:"content"` // Array of content blocks
}

// ContentBlock is a single piece of content within a message.
// Exactly one of the fields should be set.
type ContentBlock struct {
	Text       *string     `json:"text,omitempty"`        // Text content
	ToolCall   *ToolCall   `json:"tool_call,omitempty"`   // Tool invocation (assistant → user)
	ToolResult *ToolResult `json:"tool_result,omitempty"` // Tool response (user → assistant)
}

// ToolCall is a tool invocation requested by the model
type ToolCall struct {
	ID    string          `json:"id,omitempty"`    // Call ID
	Name  string          `json:"name"`            // Tool function name
	Input json.RawMessage `json:"input,omitempty"` // JSON-encoded arguments
}

// ToolResult is the result of running a tool
type ToolResult struct {
	ID      string          `json:"id,omitempty"`      // Matches the ToolCall ID
	Name    string          `json:"name,omitempty"`    // Tool function name
	Content json.RawMessage `json:"content,omitempty"` // JSON-encoded result
	IsError bool            `json:"is_error,omitempty"`
}

// Conversation is a sequence of messages exchanged with a language model
type Conversation []*Message

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewMessage returns a message with the given role and text content
func NewMessage(role, text string) *Message {
	return &Message{
		Role:    role,
		Content: []ContentBlock{{Text: types.Ptr(text)}},
	}
}

// NewToolResult returns a content block containing a tool result
func NewToolResult(id, name string, v any) ContentBlock {
	data, err := json.Marshal(v)
	if err != nil {
		return NewToolError(id, name, err)
	}
	return ContentBlock{
		ToolResult: &ToolResult{
			ID:      id,
			Name:    name,
			Content: json.RawMessage(data),
		},
	}
}

// NewToolError returns a content block containing a tool error
func NewToolError(id, name string, err error) ContentBlock {
	return ContentBlock{
		ToolResult: &ToolResult{
			ID:      id,
			Name:    name,
			Content: json.RawMessage(fmt.Sprintf("%q", err.Error())),
			IsError: true,
		},
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Text returns the text blocks of the message joined with newlines
func (m Message) Text() string {
	var result []string
	for _, block := range m.Content {
		if block.Text != nil {
			result = append(result, *block.Text)
		}
	}
	return strings.Join(result, "\n")
}

// ToolCalls returns the tool calls in the message
func (m Message) ToolCalls() []ToolCall {
	var result []ToolCall
	for _, block := range m.Content {
		if block.ToolCall != nil {
			result = append(result, *block.ToolCall)
		}
	}
	return result
}

// Append adds a message to the conversation
func (c *Conversation) Append(message Message) {
	*c = append(*c, &message)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Message) String() string {
	return types.Stringify(m)
}
