package tool_test

import (
	"context"
	"encoding/json"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	weather "github.com/mutablelogic/go-weather"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

type echoRequest struct {
	Location string `json:"location" jsonschema:"The location"`
}

type echoTool struct {
	name string
}

func (s *echoTool) Name() string        { return s.name }
func (s *echoTool) Description() string { return "echo the location" }
func (s *echoTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[echoRequest](nil)
}
func (s *echoTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req echoRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}
	return req.Location, nil
}

func Test_tool_001(t *testing.T) {
	assert := assert.New(t)
	tk, err := tool.NewToolkit(&echoTool{name: "b_tool"}, &echoTool{name: "a_tool"})
	assert.NoError(err)

	tools := tk.Tools()
	assert.Len(tools, 2)
	assert.Equal("a_tool", tools[0].Name())
	assert.Equal("b_tool", tools[1].Name())
	assert.NotNil(tk.Lookup("a_tool"))
	assert.Nil(tk.Lookup("c_tool"))
}

func Test_tool_002(t *testing.T) {
	assert := assert.New(t)
	tk, err := tool.NewToolkit(&echoTool{name: "my_tool"})
	assert.NoError(err)

	// Duplicate, invalid and nil tools are rejected
	assert.ErrorIs(tk.Register(&echoTool{name: "my_tool"}), weather.ErrConflict)
	assert.ErrorIs(tk.Register(&echoTool{name: "my tool"}), weather.ErrBadParameter)
	assert.ErrorIs(tk.Register(nil), weather.ErrBadParameter)
}

func Test_tool_003(t *testing.T) {
	assert := assert.New(t)
	tk, err := tool.NewToolkit(&echoTool{name: "echo"})
	assert.NoError(err)

	result, err := tk.Run(context.TODO(), "echo", json.RawMessage(`{"location":"Paris"}`))
	assert.NoError(err)
	assert.Equal("Paris", result)

	result, err = tk.Run(context.TODO(), "echo", map[string]any{"location": "London"})
	assert.NoError(err)
	assert.Equal("London", result)
}

func Test_tool_004(t *testing.T) {
	assert := assert.New(t)
	tk, err := tool.NewToolkit(&echoTool{name: "echo"})
	assert.NoError(err)

	_, err = tk.Run(context.TODO(), "missing", nil)
	assert.ErrorIs(err, weather.ErrNotFound)

	// Schema mismatch
	_, err = tk.Run(context.TODO(), "echo", json.RawMessage(`{"location":42}`))
	assert.ErrorIs(err, weather.ErrBadParameter)
}

func Test_tool_005(t *testing.T) {
	assert := assert.New(t)
	tk, err := tool.NewToolkit(&echoTool{name: "echo"})
	assert.NoError(err)
	assert.Equal("echo: echo the location", tk.Feedback(schema.ToolCall{Name: "echo"}))
	assert.Equal("other", tk.Feedback(schema.ToolCall{Name: "other"}))
}
