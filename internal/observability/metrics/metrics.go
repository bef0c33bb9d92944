// Package metrics exposes Prometheus instrumentation for the edit service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const prefix = "country_edit_"

// Operation and result label values used by the store decorator.
const (
	OpFetch = "fetch"
	OpSave  = "save"

	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics holds the service's collectors on a private registry, so
// multiple instances (one per test) never collide.
type Metrics struct {
	registry *prometheus.Registry

	storeOps     *prometheus.CounterVec
	storeLatency *prometheus.HistogramVec
	openSessions prometheus.Gauge
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		storeOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "store_operations_total",
				Help: "Record store operations by operation and result",
			},
			[]string{"op", "result"},
		),
		storeLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "store_latency_seconds",
				Help:    "Record store operation latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),
		openSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: prefix + "open_sessions",
				Help: "Form sessions currently open",
			},
		),
	}

	m.registry.MustRegister(m.storeOps, m.storeLatency, m.openSessions)
	return m
}

// Handler serves the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveStoreOp records one store operation.
func (m *Metrics) ObserveStoreOp(op, result string, elapsed time.Duration) {
	m.storeOps.WithLabelValues(op, result).Inc()
	m.storeLatency.WithLabelValues(op).Observe(elapsed.Seconds())
}

// SessionOpened bumps the open-sessions gauge.
func (m *Metrics) SessionOpened() {
	m.openSessions.Inc()
}

// SessionClosed drops the open-sessions gauge.
func (m *Metrics) SessionClosed() {
	m.openSessions.Dec()
}

// StoreOps returns the operations counter for inspection in tests.
func (m *Metrics) StoreOps() *prometheus.CounterVec {
	return m.storeOps
}

// OpenSessions returns the open-sessions gauge for inspection in tests.
func (m *Metrics) OpenSessions() prometheus.Gauge {
	return m.openSessions
}
