// Package metric provides Prometheus metrics for DocFold.
package metric

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRegistry_Scrape(t *testing.T) {
	r := NewRegistry()

	r.RequestsTotal.WithLabelValues("GET", "200").Inc()
	r.RequestDuration.WithLabelValues("GET").Observe(0.01)
	r.DocumentOps.WithLabelValues("put").Inc()
	r.RegisterSessionsGauge(func() float64 { return 3 })

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("scrape status = %d", rec.Code)
	}
	body := rec.Body.String()

	for _, want := range []string{
		`docfold_http_requests_total{method="GET",status="200"} 1`,
		"docfold_http_request_duration_seconds_bucket",
		`docfold_store_document_ops_total{op="put"} 1`,
		"docfold_auth_sessions_active 3",
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("scrape output missing %q", want)
		}
	}
}

func TestRegistry_SessionsGaugeTracksCallback(t *testing.T) {
	r := NewRegistry()

	n := 0.0
	r.RegisterSessionsGauge(func() float64 { return n })

	scrape := func() string {
		rec := httptest.NewRecorder()
		r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
		return rec.Body.String()
	}

	if !strings.Contains(scrape(), "docfold_auth_sessions_active 0") {
		t.Error("gauge did not start at 0")
	}
	n = 5
	if !strings.Contains(scrape(), "docfold_auth_sessions_active 5") {
		t.Error("gauge did not follow callback")
	}
}
