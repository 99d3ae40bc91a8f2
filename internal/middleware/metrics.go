package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"clustergate.space/cg2-docs-web/internal/metrics"
)

// Metrics records request counts and latency keyed by the matched chi route pattern.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := NewResponseRecorder(w)
			next.ServeHTTP(rw, r)

			m.ObserveRequest(routeLabel(chi.RouteContext(r.Context())), r.Method, rw.Status(), time.Since(start))
		})
	}
}

// routeLabel joins the matched patterns like chi's RoutePattern but keeps the
// trailing slash, so "/docs/" and its "/docs" redirect stay separate series.
func routeLabel(rctx *chi.Context) string {
	if rctx == nil {
		return ""
	}
	pattern := strings.Join(rctx.RoutePatterns, "")
	for strings.Contains(pattern, "/*/") {
		pattern = strings.ReplaceAll(pattern, "/*/", "/")
	}
	return pattern
}
