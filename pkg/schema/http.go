package schema

import (
	// Packages
	session "github.com/mutablelogic/go-weather/pkg/session"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ChatRequest is a single user turn
type ChatRequest struct {
	Text string `json:"text" arg:"" help:"User input text"`
}

// ChatResponse is the reply to a turn
type ChatResponse struct {
	Text  string `json:"text"`
	Reply string `json:"reply"`
}

// HistoryResponse is the conversation so far
type HistoryResponse struct {
	Count        int            `json:"count"`
	History      []session.Turn `json:"history"`
	LastLocation *string        `json:"last_location,omitempty"`
	LastDate     *string        `json:"last_date,omitempty"`
}
