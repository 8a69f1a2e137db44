package httphandler

import (
	_ "embed"
	"net/http"

	// Packages
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi"
	metrics "github.com/mutablelogic/go-weather/pkg/metrics"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

//go:embed index.html
var index []byte

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: {prefix}/
func IndexHandler(prefix string) (string, httprequest.PathItem) {
	path := indexPath(prefix)
	page := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			_ = httpresponse.Error(w, httpresponse.ErrNotFound, r.URL.Path)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = w.Write(index)
		}
	}
	return path, httprequest.NewPathItem("Index", "Web chat page", "chat").
		Get(page, "Web chat page", openapi.WithTextResponse(http.StatusOK, "HTML page")).
		Head(page, "Web chat page headers")
}

// Path: metrics
func MetricsHandler(m *metrics.Metrics) (string, httprequest.PathItem) {
	handler := m.Handler()
	return "metrics", httprequest.NewPathItem("Metrics", "Prometheus metrics", "metrics").
		Get(handler.ServeHTTP, "Prometheus metrics", openapi.WithTextResponse(http.StatusOK, "Metrics in text exposition format"))
}
