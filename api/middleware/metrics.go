package middleware

import (
	"net/http"
	"strconv"
	"time"

	"lugx_gaming_server/observability"

	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records a count and a duration for every request, labeled by
// method, route pattern and status. It only observes; it can neither alter
// nor fail the request it wraps.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := chiware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		// The chi pattern ("/orders/{id}") keeps label cardinality bounded;
		// unmatched requests fall back to the raw path.
		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}

		labels := prometheus.Labels{
			"method":      r.Method,
			"route":       route,
			"status_code": strconv.Itoa(ww.Status()),
		}

		observability.HTTPRequests.With(labels).Inc()
		observability.HTTPDuration.With(labels).Observe(time.Since(start).Seconds())
	})
}
