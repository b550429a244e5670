// Package metric provides Prometheus metrics for DocFold.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all application metrics.
type Registry struct {
	registry *prometheus.Registry

	// Request metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Document metrics
	DocumentOps *prometheus.CounterVec
}

// NewRegistry creates a registry with all application metrics registered,
// plus the standard Go runtime and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docfold",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method and status code.",
		}, []string{"method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "docfold",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		DocumentOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docfold",
			Subsystem: "store",
			Name:      "document_ops_total",
			Help:      "Total number of document store operations by kind.",
		}, []string{"op"}),
	}

	reg.MustRegister(
		r.RequestsTotal,
		r.RequestDuration,
		r.DocumentOps,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// RegisterSessionsGauge exposes the live session count. The callback is
// invoked on every scrape.
func (r *Registry) RegisterSessionsGauge(count func() float64) {
	r.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "docfold",
		Subsystem: "auth",
		Name:      "sessions_active",
		Help:      "Number of currently issued session tokens.",
	}, count))
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
