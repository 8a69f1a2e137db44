package tool

import (
	"context"
	"encoding/json"
	"maps"
	"slices"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	types "github.com/mutablelogic/go-server/pkg/types"
	weather "github.com/mutablelogic/go-weather"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Tool is an interface for a tool with a name, description and JSON schema
type Tool interface {
	// Return the name of the tool
	Name() string

	// Return the description of the tool
	Description() string

	// Return the JSON schema for the tool input
	Schema() (*jsonschema.Schema, error)

	// Run the tool with the given input as JSON (may be nil)
	Run(ctx context.Context, input json.RawMessage) (any, error)
}

// Toolkit is a collection of tools with unique names
type Toolkit struct {
	tools map[string]Tool
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewToolkit creates a new toolkit with the given tools.
// Returns an error if any tool has an invalid or duplicate name.
func NewToolkit(tools ...Tool) (*Toolkit, error) {
	tk := &Toolkit{
		tools: make(map[string]Tool),
	}
	if err := tk.Register(tools...); err != nil {
		return nil, err
	}
	return tk, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Tools returns all tools in the toolkit, ordered by name
func (tk *Toolkit) Tools() []Tool {
	result := make([]Tool, 0, len(tk.tools))
	for _, name := range slices.Sorted(maps.Keys(tk.tools)) {
		result = append(result, tk.tools[name])
	}
	return result
}

// Register adds one or more tools to the toolkit.
// Returns an error if any tool is nil, or has an invalid or duplicate name.
func (tk *Toolkit) Register(tools ...Tool) error {
	for _, t := range tools {
		if t == nil {
			return weather.ErrBadParameter.With("tool cannot be nil")
		}
		name := t.Name()
		if !types.IsIdentifier(name) {
			return weather.ErrBadParameter.Withf("invalid tool name: %q", name)
		}
		if _, exists := tk.tools[name]; exists {
			return weather.ErrConflict.Withf("duplicate tool name: %q", name)
		}
		tk.tools[name] = t
	}
	return nil
}

// Lookup returns a tool by name, or nil if not found
func (tk *Toolkit) Lookup(name string) Tool {
	return tk.tools[name]
}

// Run executes a tool by name with the given input.
// The input should be json.RawMessage or nil.
// Returns an error if the tool is not found, the input does not match the schema,
// or the tool execution fails.
func (tk *Toolkit) Run(ctx context.Context, name string, input any) (any, error) {
	// Lookup the tool
	tool := tk.Lookup(name)
	if tool == nil {
		return nil, weather.ErrNotFound.Withf("tool not found: %q", name)
	}

	// Convert input to json.RawMessage
	var rawInput json.RawMessage
	if input != nil {
		switch v := input.(type) {
		case json.RawMessage:
			rawInput = v
		case []byte:
			rawInput = json.RawMessage(v)
		default:
			data, err := json.Marshal(input)
			if err != nil {
				return nil, weather.ErrBadParameter.Withf("failed to marshal input: %v", err)
			}
			rawInput = json.RawMessage(data)
		}
	}

	// Validate input against schema if provided
	if len(rawInput) > 0 {
		if err := validate(tool, rawInput); err != nil {
			return nil, err
		}
	}

	// Run the tool with raw JSON
	return tool.Run(ctx, rawInput)
}

// Feedback returns a human-readable description of a tool call, including
// the tool name and its description when available.
func (tk *Toolkit) Feedback(call schema.ToolCall) string {
	if t := tk.Lookup(call.Name); t != nil && t.Description() != "" {
		return call.Name + ": " + t.Description()
	}
	return call.Name
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func validate(tool Tool, input json.RawMessage) error {
	schema, err := tool.Schema()
	if err != nil {
		return weather.ErrBadParameter.Withf("schema generation failed: %v", err)
	} else if schema == nil {
		return nil
	}

	// Unmarshal into a map for validation
	var mapInput map[string]any
	if err := json.Unmarshal(input, &mapInput); err != nil {
		return weather.ErrBadParameter.Withf("failed to unmarshal JSON input: %v", err)
	}

	// Validate against schema
	resolved, err := schema.Resolve(nil)
	if err != nil {
		return weather.ErrBadParameter.Withf("schema resolution failed: %v", err)
	}
	if err := resolved.Validate(mapInput); err != nil {
		return weather.ErrBadParameter.Withf("input validation failed: %v", err)
	}

	// Return success
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (tk *Toolkit) String() string {
	names := make([]string, 0, len(tk.tools))
	for _, t := range tk.Tools() {
		names = append(names, t.Name())
	}
	return types.Stringify(names)
}
