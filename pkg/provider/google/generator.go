package google

import (
	"context"
	"errors"
	"net/http"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	weather "github.com/mutablelogic/go-weather"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Usage reports the tokens consumed by a request
type Usage struct {
	InputTokens  uint `json:"input_tokens"`
	OutputTokens uint `json:"output_tokens"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Delay before the first retry, doubled for each further retry
	retryDelay = 500 * time.Millisecond
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Generate sends the conversation to the model and appends the reply to it.
// The reply may contain text, tool calls or both.
func (c *Client) Generate(ctx context.Context, model string, conversation *schema.Conversation, opts ...Opt) (*schema.Message, *Usage, error) {
	if conversation == nil || len(*conversation) == 0 {
		return nil, nil, weather.ErrBadParameter.With("conversation is required")
	}
	if model == "" {
		model = DefaultModel
	}

	// Apply options
	options, err := applyOpts(opts...)
	if err != nil {
		return nil, nil, err
	}

	// Build request
	request, err := generateRequestFromOpts(conversation, options)
	if err != nil {
		return nil, nil, err
	}

	// Send the request, retrying on rate limits and server errors
	var response geminiGenerateResponse
	for attempt := uint(0); ; attempt++ {
		payload, err := client.NewJSONRequest(request)
		if err != nil {
			return nil, nil, err
		}
		err = c.DoWithContext(ctx, payload, &response, client.OptPath("models", model+":generateContent"))
		if err == nil {
			break
		} else if attempt >= options.retries || !isRetryable(err) {
			return nil, nil, weather.Upstream(err)
		}
		select {
		case <-ctx.Done():
			return nil, nil, weather.Upstream(ctx.Err())
		case <-time.After(retryDelay << attempt):
		}
	}

	return processResponse(&response, conversation)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// processResponse converts a gemini response to a schema message and appends it to the conversation
func processResponse(response *geminiGenerateResponse, conversation *schema.Conversation) (*schema.Message, *Usage, error) {
	// A blocked prompt has no candidates
	if len(response.Candidates) == 0 {
		if response.PromptFeedback != nil && response.PromptFeedback.BlockReason != "" {
			return nil, nil, weather.ErrUpstream.Withf("prompt blocked: %s", response.PromptFeedback.BlockReason)
		}
		return nil, nil, weather.ErrUpstream.With("no candidates returned")
	}

	message := messageFromGeminiResponse(response)
	conversation.Append(*message)

	// Build usage
	usage := new(Usage)
	if response.UsageMetadata != nil {
		usage.InputTokens = uint(response.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = uint(response.UsageMetadata.CandidatesTokenCount)
	}

	// Return error for finish reasons that need caller attention
	switch reason := response.Candidates[0].FinishReason; reason {
	case geminiFinishReasonMaxTokens, geminiFinishReasonSafety, geminiFinishReasonRecitation,
		geminiFinishReasonBlocklist, geminiFinishReasonProhibitedContent, geminiFinishReasonSPII,
		geminiFinishReasonMalformedFunctionCall:
		return message, usage, weather.ErrUpstream.Withf("finish reason %s", reason)
	}

	return message, usage, nil
}

// generateRequestFromOpts builds a geminiGenerateRequest from the conversation and applied options
func generateRequestFromOpts(conversation *schema.Conversation, options *options) (*geminiGenerateRequest, error) {
	contents, err := geminiContentsFromConversation(conversation)
	if err != nil {
		return nil, err
	}

	request := &geminiGenerateRequest{
		Contents: contents,
	}

	// System instruction
	if options.systemPrompt != "" {
		request.SystemInstruction = geminiNewTextContent("", options.systemPrompt)
	}

	// Generation config is omitted when nothing is set
	request.GenerationConfig.Temperature = options.temperature
	request.GenerationConfig.MaxOutputTokens = int(options.maxTokens)

	// Tools
	if decls := geminiFunctionDeclsFromTools(options.tools); len(decls) > 0 {
		request.Tools = []*geminiTool{{
			FunctionDeclarations: decls,
		}}
	}

	return request, nil
}

// isRetryable returns true for rate limits, server errors and transport
// errors, but not for a cancelled or expired context
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var httpErr httpresponse.Err
	if errors.As(err, &httpErr) {
		code := int(httpErr)
		return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
	}
	return true
}
