// Package telemetry holds prometheus collectors of the service.
package telemetry

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Transition outcomes
const (
	OutcomeApplied = "applied"
	OutcomeSkipped = "skipped"
	OutcomeDenied  = "denied"
)

var (
	once sync.Once

	Transitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "devagent_transitions_total", Help: "Named status transitions by entity and outcome"},
		[]string{"entity", "transition", "outcome"},
	)
	Propagations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "devagent_propagations_total", Help: "Status changes applied to related entity"},
		[]string{"rule"},
	)
	RateLimitRejects = prometheus.NewCounter(prometheus.CounterOpts{Name: "devagent_rate_limit_rejects_total", Help: "Requests rejected by rate limiter"})
)

// Handler exposes /metrics HTTP handler with a singleton registry.
func Handler() http.Handler {
	once.Do(func() {
		prometheus.MustRegister(
			Transitions,
			Propagations,
			RateLimitRejects,
		)
	})
	return promhttp.Handler()
}
