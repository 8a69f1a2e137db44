package httphandler

import (
	"net/http"
	"strings"

	// Packages
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	jsonschema "github.com/mutablelogic/go-server/pkg/jsonschema"
	openapi "github.com/mutablelogic/go-server/pkg/openapi"
	weather "github.com/mutablelogic/go-weather"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: chat
func ChatHandler(chatter Chatter) (string, httprequest.PathItem) {
	return "chat", httprequest.NewPathItem("Chat", "Answer a turn of the conversation", "chat").
		Post(func(w http.ResponseWriter, r *http.Request) {
			var req schema.ChatRequest
			if err := httprequest.Read(r, &req); err != nil {
				_ = httpresponse.Error(w, err)
				return
			}
			text := strings.TrimSpace(req.Text)
			if text == "" {
				_ = httpresponse.Error(w, httpErr(weather.ErrBadParameter.With("text is required")))
				return
			}
			reply, err := chatter.Chat(r.Context(), text)
			if err != nil {
				_ = httpresponse.Error(w, httpErr(err))
				return
			}
			_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), schema.ChatResponse{
				Text:  text,
				Reply: reply,
			})
		}, "Answer a turn",
			openapi.WithJSONRequest(jsonschema.MustFor[schema.ChatRequest]()),
			openapi.WithJSONResponse(http.StatusOK, jsonschema.MustFor[schema.ChatResponse]()),
			openapi.WithErrorResponse(http.StatusBadRequest, "The text is empty"),
			openapi.WithErrorResponse(http.StatusGatewayTimeout, "The language model timed out"),
		)
}
