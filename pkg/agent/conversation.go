package agent

import (
	"encoding/json"

	// Packages
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	session "github.com/mutablelogic/go-weather/pkg/session"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Turns answered by the model are counted under this intent
const intentAgent = "agent"

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// conversationFromHistory returns the recorded turns as alternating user
// and assistant messages
func conversationFromHistory(turns []session.Turn) schema.Conversation {
	conversation := make(schema.Conversation, 0, len(turns)*2+1)
	for _, turn := range turns {
		conversation = append(conversation,
			schema.NewMessage(schema.RoleUser, turn.User),
			schema.NewMessage(schema.RoleAssistant, turn.Assistant),
		)
	}
	return conversation
}

// rawJSON returns valid JSON for logging tool input
func rawJSON(data json.RawMessage) []byte {
	if len(data) == 0 || !json.Valid(data) {
		return []byte("null")
	}
	return data
}
