package google

import (
	"encoding/json"

	// Packages
	uuid "github.com/google/uuid"
	weather "github.com/mutablelogic/go-weather"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// CONVERSATION / MESSAGE → GEMINI WIRE FORMAT (OUTBOUND)

// geminiContentsFromConversation converts a schema.Conversation into gemini wire Content
// slices. System messages are skipped (handled via SystemInstruction separately).
func geminiContentsFromConversation(conversation *schema.Conversation) ([]*geminiContent, error) {
	if conversation == nil {
		return nil, nil
	}

	contents := make([]*geminiContent, 0, len(*conversation))
	for _, msg := range *conversation {
		if msg.Role == schema.RoleSystem {
			continue
		}
		// Skip empty assistant messages
		if msg.Role == schema.RoleAssistant && len(msg.Content) == 0 {
			continue
		}
		c, err := geminiContentFromMessage(msg)
		if err != nil {
			return nil, err
		}
		contents = append(contents, c)
	}
	return contents, nil
}

// geminiContentFromMessage converts a single schema.Message to gemini wire Content
func geminiContentFromMessage(msg *schema.Message) (*geminiContent, error) {
	parts := make([]*geminiPart, 0, len(msg.Content))
	for i := range msg.Content {
		block := &msg.Content[i]
		switch {
		case block.Text != nil:
			parts = append(parts, &geminiPart{Text: *block.Text})
		case block.ToolCall != nil:
			args := make(map[string]any)
			if len(block.ToolCall.Input) > 0 {
				if err := json.Unmarshal(block.ToolCall.Input, &args); err != nil {
					return nil, weather.ErrInternalServerError.Withf("unmarshal tool call args: %v", err)
				}
			}
			parts = append(parts, geminiNewFunctionCallPart(block.ToolCall.Name, args))
		case block.ToolResult != nil:
			if p := geminiPartFromToolResult(block.ToolResult); p != nil {
				parts = append(parts, p)
			}
		}
	}

	// Role mapping: "assistant" → "model" for Gemini
	role := msg.Role
	if role == schema.RoleAssistant {
		role = "model"
	}

	return &geminiContent{
		Parts: parts,
		Role:  role,
	}, nil
}

// geminiPartFromToolResult converts a schema.ToolResult to a gemini wire FunctionResponse Part.
func geminiPartFromToolResult(tr *schema.ToolResult) *geminiPart {
	name := tr.Name
	if name == "" {
		name = tr.ID
	}
	if name == "" {
		return nil
	}

	response := make(map[string]any)
	if len(tr.Content) > 0 {
		var content any
		if err := json.Unmarshal(tr.Content, &content); err != nil {
			// If the content is not valid JSON, pass it as a raw string
			response["output"] = string(tr.Content)
		} else {
			response["output"] = content
		}
	}
	if tr.IsError {
		response["error"] = true
	}

	return geminiNewFunctionResponsePart(name, response)
}

///////////////////////////////////////////////////////////////////////////////
// TOOL CONVERSION

// geminiFunctionDeclsFromTools converts a slice of tools to
// gemini wire FunctionDeclaration values, using ParametersJsonSchema.
func geminiFunctionDeclsFromTools(tools []tool.Tool) []*geminiFunctionDeclaration {
	decls := make([]*geminiFunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		decl := &geminiFunctionDeclaration{
			Name:        t.Name(),
			Description: t.Description(),
		}

		// Convert the jsonschema.Schema to map[string]any via JSON round-trip
		if s, err := t.Schema(); err == nil && s != nil {
			if data, err := json.Marshal(s); err == nil {
				var m map[string]any
				if err := json.Unmarshal(data, &m); err == nil {
					decl.ParametersJSONSchema = m
				}
			}
		}

		decls = append(decls, decl)
	}
	return decls
}

///////////////////////////////////////////////////////////////////////////////
// GEMINI WIRE FORMAT → MESSAGE (INBOUND)

// messageFromGeminiResponse converts the first candidate of a response to a
// schema.Message. Returns an empty assistant message if there is no content.
func messageFromGeminiResponse(response *geminiGenerateResponse) *schema.Message {
	message := &schema.Message{Role: schema.RoleAssistant}
	if response == nil || len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return message
	}
	for _, part := range response.Candidates[0].Content.Parts {
		if block, ok := blockFromGeminiPart(part); ok {
			message.Content = append(message.Content, block)
		}
	}
	return message
}

// blockFromGeminiPart converts a gemini wire Part to a schema.ContentBlock.
// Thoughts and empty parts are skipped.
func blockFromGeminiPart(part *geminiPart) (schema.ContentBlock, bool) {
	switch {
	case part == nil, part.Thought:
		return schema.ContentBlock{}, false
	case part.FunctionCall != nil:
		var input json.RawMessage
		if part.FunctionCall.Args != nil {
			if data, err := json.Marshal(part.FunctionCall.Args); err == nil {
				input = data
			}
		}
		return schema.ContentBlock{
			ToolCall: &schema.ToolCall{
				ID:    uuid.New().String(),
				Name:  part.FunctionCall.Name,
				Input: input,
			},
		}, true
	case part.Text != "":
		text := part.Text
		return schema.ContentBlock{Text: &text}, true
	default:
		return schema.ContentBlock{}, false
	}
}
