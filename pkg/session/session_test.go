package session_test

import (
	"testing"

	// Packages
	session "github.com/mutablelogic/go-weather/pkg/session"
	assert "github.com/stretchr/testify/assert"
)

func Test_session_001(t *testing.T) {
	assert := assert.New(t)
	s := session.New()
	assert.NotNil(s.History)
	assert.Equal("", s.Location())
	assert.Equal("", s.Date())
}

func Test_session_002(t *testing.T) {
	// The last location is never cleared by an empty value
	assert := assert.New(t)
	s := session.New()
	s.SetLocation("Paris")
	s.SetLocation("")
	assert.Equal("Paris", s.Location())
}

func Test_session_003(t *testing.T) {
	// The last date is cleared by an empty value
	assert := assert.New(t)
	s := session.New()
	s.SetDate("tomorrow")
	assert.Equal("tomorrow", s.Date())
	s.SetDate("")
	assert.Nil(s.LastDate)
}

func Test_session_004(t *testing.T) {
	// Clone is a deep copy
	assert := assert.New(t)
	s := session.New()
	s.Append("q1", "a1")
	s.SetLocation("Berlin")

	clone := s.Clone()
	clone.Append("q2", "a2")
	clone.SetLocation("Rome")

	assert.Len(s.History, 1)
	assert.Equal("Berlin", s.Location())
	assert.Len(clone.History, 2)
	assert.Equal("Rome", clone.Location())
}

func Test_session_005(t *testing.T) {
	assert := assert.New(t)
	var s *session.Session
	clone := s.Clone()
	assert.NotNil(clone)
	assert.Empty(clone.History)
	assert.Equal("", s.Location())
}
