// Package metric provides Prometheus metrics for DocFold.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: Prometheus registry and HTTP handler
//
// Metrics include:
//
//   - Request counters and latency histograms
//   - Active session count gauge
//   - Document operation counters
//
// Metrics are exposed at /metrics in Prometheus format.
package metric
