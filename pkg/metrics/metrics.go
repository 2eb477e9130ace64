// Package metrics exposes Prometheus instrumentation for the simulator.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the simulator's Prometheus collectors backed by a private
// registry, so tests can create as many instances as they like.
type Metrics struct {
	registry *prometheus.Registry

	requests  *prometheus.CounterVec
	overrides *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// New creates a Metrics with all collectors registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arkivsim_requests_total",
			Help: "Simulator requests served, by endpoint pattern and effective behavior.",
		}, []string{"endpoint", "behavior"}),
		overrides: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arkivsim_behavior_overrides_total",
			Help: "Behavior overrides registered through the admin API.",
		}, []string{"target", "mode", "oneshot"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "arkivsim_request_duration_seconds",
			Help:    "Simulator request handling duration, injected delays included.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"endpoint"}),
	}

	reg.MustRegister(m.requests, m.overrides, m.duration)
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return m
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(endpoint, behavior string, elapsed time.Duration) {
	m.requests.WithLabelValues(endpoint, behavior).Inc()
	m.duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveOverride records one behavior override registration.
func (m *Metrics) ObserveOverride(target, mode string, oneShot bool) {
	shot := "false"
	if oneShot {
		shot = "true"
	}
	m.overrides.WithLabelValues(target, mode, shot).Inc()
}

// Handler returns the scrape endpoint for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
