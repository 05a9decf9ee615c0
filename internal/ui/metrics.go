package ui

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the frontend's Prometheus metrics. Each UI instance carries
// its own registry so tests can run several frontends side by side.
type Metrics struct {
	registry *prometheus.Registry

	GuardDecisions  *prometheus.CounterVec
	LoginAttempts   prometheus.Counter
	LoginFailures   prometheus.Counter
	UpstreamLatency *prometheus.HistogramVec
}

// NewMetrics creates and registers all frontend metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		GuardDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gudang_guard_decisions_total",
			Help: "Navigation guard decisions by outcome",
		}, []string{"outcome"}),
		LoginAttempts: factory.NewCounter(prometheus.CounterOpts{
			Name: "gudang_login_attempts_total",
			Help: "Total login form submissions",
		}),
		LoginFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "gudang_login_failures_total",
			Help: "Login form submissions rejected by the backend",
		}),
		UpstreamLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gudang_upstream_request_seconds",
			Help:    "Latency of requests to the WMS backend",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// Handler serves the metrics endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// InstrumentTransport wraps an HTTP transport so every backend round trip is
// observed in the upstream latency histogram.
func (m *Metrics) InstrumentTransport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &metricsTransport{base: base, latency: m.UpstreamLatency}
}

type metricsTransport struct {
	base    http.RoundTripper
	latency *prometheus.HistogramVec
}

func (t *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	t.latency.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())
	return resp, err
}
