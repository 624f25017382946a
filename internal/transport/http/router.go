// Package httptransport assembles the full HTTP surface of the service.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"arcana/internal/platform/metrics"
	"arcana/internal/platform/middleware"
	readinghandler "arcana/internal/reading/handler"
	shufflehandler "arcana/internal/shuffle/handler"
)

// NewRouter wires middleware, the API endpoints, the metrics endpoint, and the
// optional static client page.
func NewRouter(
	logger *slog.Logger,
	m *metrics.Metrics,
	shuffle *shufflehandler.Handler,
	readings *readinghandler.Handler,
	staticDir string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Latency(m))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.ContentTypeJSON)
		shuffle.Register(api)
		readings.Register(api)
	})

	if staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(staticDir)))
	}

	return r
}
