package middleware

import (
	"net/http"
	"time"

	"movie-catalog/pkg/metrics"

	"github.com/go-chi/chi/v5"
)

// Metrics records request count, latency and in-flight requests labelled by chi route pattern.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			metrics.HTTPRequestsInFlight.Inc()
			defer metrics.HTTPRequestsInFlight.Dec()

			rw := wrapResponseWriter(w)
			next.ServeHTTP(rw, r)

			var route string
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				route = rctx.RoutePattern()
			}
			metrics.RecordHTTPRequest(r.Method, route, rw.statusCode, time.Since(start))
		})
	}
}
