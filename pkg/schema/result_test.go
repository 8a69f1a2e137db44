package schema_test

import (
	"encoding/json"
	"errors"
	"testing"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func Test_result_001(t *testing.T) {
	assert := assert.New(t)
	r := schema.Success(schema.Alerts{Location: "Paris", Alerts: []string{"Wind"}})
	assert.True(r.OK())
	assert.Equal(schema.KindSuccess, r.Kind)
	assert.Equal("", r.Message())

	data, err := json.Marshal(r)
	assert.NoError(err)
	assert.JSONEq(`{"location":"Paris","alerts":["Wind"]}`, string(data))
}

func Test_result_002(t *testing.T) {
	assert := assert.New(t)
	r := schema.NeedsCountry[schema.Location]("Moratuwa")
	assert.False(r.OK())
	assert.Equal("need_country", r.Kind.String())

	data, err := json.Marshal(r)
	assert.NoError(err)
	assert.JSONEq(`{"need_country":true,"city":"Moratuwa"}`, string(data))
}

func Test_result_003(t *testing.T) {
	assert := assert.New(t)
	r := schema.Failure[schema.Location](errors.New("Location not found: Atlantis"))
	assert.Equal("Location not found: Atlantis", r.Message())

	data, err := json.Marshal(r)
	assert.NoError(err)
	assert.JSONEq(`{"error":"Location not found: Atlantis"}`, string(data))

	// A nil error still has a message
	assert.NotEmpty(schema.Failure[int](nil).Message())
}

func Test_result_004(t *testing.T) {
	// Map carries every outcome over
	assert := assert.New(t)
	name := func(l schema.Location) string { return l.Name() }

	r := schema.Map(schema.Success(schema.Location{City: "Tokyo", Country: "Japan"}), name)
	assert.Equal("Tokyo, Japan", r.Value)

	r = schema.Map(schema.NeedsCountry[schema.Location]("Kandy"), name)
	assert.Equal(schema.KindNeedsCountry, r.Kind)
	assert.Equal("Kandy", r.City)

	r = schema.Map(schema.Failure[schema.Location](errors.New("boom")), name)
	assert.Equal("boom", r.Message())
}

func Test_result_005(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Unknown", schema.Location{}.Name())
	assert.Equal("Galle", schema.Location{City: "Galle"}.Name())

	w := schema.CurrentWeather{Location: "Galle", Temperature: types.Ptr(29.5)}
	data, err := json.Marshal(w)
	assert.NoError(err)
	assert.JSONEq(`{"location":"Galle","temperature":29.5}`, string(data))
}

func Test_message_001(t *testing.T) {
	assert := assert.New(t)
	msg := schema.NewMessage(schema.RoleUser, "Hello")
	assert.Equal("Hello", msg.Text())
	assert.Empty(msg.ToolCalls())

	msg.Content = append(msg.Content, schema.ContentBlock{
		ToolCall: &schema.ToolCall{ID: "1", Name: "get_forecast", Input: json.RawMessage(`{"location":"Paris"}`)},
	})
	assert.Len(msg.ToolCalls(), 1)

	var conversation schema.Conversation
	conversation.Append(*msg)
	assert.Len(conversation, 1)
}

func Test_message_002(t *testing.T) {
	assert := assert.New(t)
	block := schema.NewToolResult("1", "weather_alerts", schema.Alerts{Location: "Paris"})
	assert.NotNil(block.ToolResult)
	assert.False(block.ToolResult.IsError)

	block = schema.NewToolError("1", "weather_alerts", errors.New("timeout"))
	assert.True(block.ToolResult.IsError)
	assert.Equal(`"timeout"`, string(block.ToolResult.Content))
}
