package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
)

func Test_repl_001(t *testing.T) {
	assert := assert.New(t)
	var turns []string
	turn := func(_ context.Context, text string) (string, error) {
		turns = append(turns, text)
		if text == "fail" {
			return "", errors.New("boom")
		}
		return "reply to " + text, nil
	}

	var out bytes.Buffer
	in := strings.NewReader("weather in Paris\n\n  fail \nQUIT\nnever\n")
	assert.NoError(repl(context.Background(), in, &out, turn))
	assert.Equal([]string{"weather in Paris", "fail"}, turns)
	assert.Contains(out.String(), "reply to weather in Paris")
	assert.Contains(out.String(), "boom")
	assert.NotContains(out.String(), "never")
}

func Test_repl_002(t *testing.T) {
	// End of input stops the loop
	assert := assert.New(t)
	var out bytes.Buffer
	err := repl(context.Background(), strings.NewReader("hello"), &out, func(_ context.Context, text string) (string, error) {
		return "hi", nil
	})
	assert.NoError(err)
	assert.Contains(out.String(), "hi")
	assert.True(isExit("Exit"))
	assert.False(isExit("exit now"))
}
