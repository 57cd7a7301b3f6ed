package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Process-wide collectors, registered once at startup. Metric names and
// buckets are part of the scrape contract consumed by the external
// dashboards, so they stay exactly as published.
var (
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.1, 0.3, 0.5, 1, 2, 5},
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	GameOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_operations_total",
			Help: "Total number of game catalog operations",
		},
		[]string{"operation", "status"},
	)
)

func init() {
	prometheus.MustRegister(HTTPDuration, HTTPRequests, GameOperations)
}

// Handler returns the text-exposition scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// TrackGameOperation records a catalog operation outcome.
func TrackGameOperation(operation, status string) {
	GameOperations.WithLabelValues(operation, status).Inc()
}
