package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for backend calls. They mirror the error taxonomy: a call
// either succeeds, fails before completing, is rejected as unauthenticated,
// or comes back with a server error status.
const (
	OutcomeOK              = "ok"
	OutcomeNetworkError    = "network_error"
	OutcomeUnauthenticated = "unauthenticated"
	OutcomeServerError     = "server_error"
)

var (
	BackendRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "savor_backend_requests_total",
		Help: "Outgoing requests to the pantry backend by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	BackendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "savor_backend_request_duration_seconds",
		Help:    "Latency of outgoing backend requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
