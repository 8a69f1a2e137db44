package httphandler

import (
	"net/http"

	// Packages
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	jsonschema "github.com/mutablelogic/go-server/pkg/jsonschema"
	openapi "github.com/mutablelogic/go-server/pkg/openapi"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: history
func HistoryHandler(chatter Chatter) (string, httprequest.PathItem) {
	return "history", httprequest.NewPathItem("History", "Conversation history and the remembered location and date", "chat").
		Get(func(w http.ResponseWriter, r *http.Request) {
			s, err := chatter.Session(r.Context())
			if err != nil {
				_ = httpresponse.Error(w, httpErr(err))
				return
			}
			_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), schema.HistoryResponse{
				Count:        len(s.History),
				History:      s.History,
				LastLocation: s.LastLocation,
				LastDate:     s.LastDate,
			})
		}, "Return the history",
			openapi.WithJSONResponse(http.StatusOK, jsonschema.MustFor[schema.HistoryResponse]()),
		).
		Delete(func(w http.ResponseWriter, r *http.Request) {
			if err := chatter.Reset(r.Context()); err != nil {
				_ = httpresponse.Error(w, httpErr(err))
				return
			}
			w.WriteHeader(http.StatusNoContent)
		}, "Clear the history and memory",
			openapi.WithNoContentResponse(http.StatusNoContent),
		)
}
