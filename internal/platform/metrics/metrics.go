// Package metrics holds all Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters and histograms the service exports.
type Metrics struct {
	ShufflesIssued     prometheus.Counter
	ReadingsComposed   prometheus.Counter
	ValidationFailures *prometheus.CounterVec
	SessionsSwept      prometheus.Counter
	RequestDuration    *prometheus.HistogramVec
}

// New creates and registers all metrics against the given registerer. Tests
// pass a fresh prometheus.NewRegistry so parallel suites do not collide.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ShufflesIssued: factory.NewCounter(prometheus.CounterOpts{
			Name: "arcana_shuffles_issued_total",
			Help: "Total number of shuffle sessions issued",
		}),
		ReadingsComposed: factory.NewCounter(prometheus.CounterOpts{
			Name: "arcana_readings_composed_total",
			Help: "Total number of readings successfully composed",
		}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "arcana_validation_failures_total",
			Help: "Reading request validation failures by error code",
		}, []string{"code"}),
		SessionsSwept: factory.NewCounter(prometheus.CounterOpts{
			Name: "arcana_sessions_swept_total",
			Help: "Total number of expired sessions removed by the sweeper",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "arcana_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

// ObserveRequest records one request's latency.
func (m *Metrics) ObserveRequest(route, method string, d time.Duration) {
	m.RequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// IncValidationFailure increments the failure counter for one error code.
func (m *Metrics) IncValidationFailure(code string) {
	m.ValidationFailures.WithLabelValues(code).Inc()
}
