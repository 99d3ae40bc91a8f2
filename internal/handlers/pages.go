package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"clustergate.space/cg2-docs-web/internal/observability"
)

// NotFound answers unknown paths with a plain 404.
func NotFound(w http.ResponseWriter, r *http.Request) {
	observability.FromContext(r.Context()).Debug("route not found", zap.String("path", r.URL.Path))
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
