/*
metrics defines the Prometheus instruments for the assistant. All methods
are safe to call on a nil *Metrics, which records nothing.
*/
package metrics

import (
	"net/http"
	"time"

	// Packages
	prometheus "github.com/prometheus/client_golang/prometheus"
	promauto "github.com/prometheus/client_golang/prometheus/promauto"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Metrics groups the instruments registered for one registry
type Metrics struct {
	gatherer prometheus.Gatherer
	turns    *prometheus.CounterVec
	tools    *prometheus.HistogramVec
	rounds   prometheus.Histogram
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Namespace = "weather"

	OutcomeSuccess      = "success"
	OutcomeNeedsCountry = "need_country"
	OutcomeError        = "error"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New registers the instruments on a new registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	return NewWithRegistry(reg, reg)
}

// NewWithRegistry registers the instruments with reg, and serves them
// from gatherer
func NewWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		gatherer: gatherer,
		turns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "turns_total",
			Help:      "Conversation turns by intent and outcome.",
		}, []string{"intent", "outcome"}),
		tools: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "tool_duration_seconds",
			Help:      "Tool call latency by tool and outcome.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
		}, []string{"tool", "outcome"}),
		rounds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "llm_rounds",
			Help:      "Language model rounds per agent turn.",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 7, 8},
		}),
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Turn counts a completed turn
func (m *Metrics) Turn(intent, outcome string) {
	if m == nil {
		return
	}
	m.turns.WithLabelValues(intent, outcome).Inc()
}

// Tool observes the duration of a tool call
func (m *Metrics) Tool(name, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.tools.WithLabelValues(name, outcome).Observe(d.Seconds())
}

// Rounds observes the number of model rounds in an agent turn
func (m *Metrics) Rounds(n int) {
	if m == nil {
		return
	}
	m.rounds.Observe(float64(n))
}

// Handler serves the registered instruments in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
