// Package httpserver provides the HTTP/HTTPS server for DocFold.
package httpserver

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yndnr/docfold-go/internal/telemetry/logger"
	"github.com/yndnr/docfold-go/internal/telemetry/metric"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestChain_Order(t *testing.T) {
	var order []string
	mk := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(okHandler(), mk("first"), mk("second"), mk("third"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	want := []string{"first", "second", "third"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestRequestID(t *testing.T) {
	t.Run("generates id", func(t *testing.T) {
		var seen string
		h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = logger.RequestIDFromContext(r.Context())
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		if !strings.HasPrefix(seen, "req-") {
			t.Errorf("request id = %q, want req- prefix", seen)
		}
		if got := rec.Header().Get("X-Request-ID"); got != seen {
			t.Errorf("header id = %q, context id = %q", got, seen)
		}
	})

	t.Run("keeps caller id", func(t *testing.T) {
		h := RequestID()(okHandler())
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Request-ID", "req-caller")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if got := rec.Header().Get("X-Request-ID"); got != "req-caller" {
			t.Errorf("header id = %q, want req-caller", got)
		}
	})

	t.Run("unique per request", func(t *testing.T) {
		h := RequestID()(okHandler())
		ids := make(map[string]bool)
		for range 50 {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
			ids[rec.Header().Get("X-Request-ID")] = true
		}
		if len(ids) != 50 {
			t.Errorf("generated %d unique ids from 50 requests", len(ids))
		}
	})
}

func TestCORS(t *testing.T) {
	h := CORS()(okHandler())

	t.Run("header on every response", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
		}
	})

	t.Run("preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/things/widget", nil))

		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", rec.Code)
		}
		if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "DELETE") {
			t.Errorf("Allow-Methods = %q", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	h := RateLimit(1, 2)(okHandler())

	req := func(ip string) int {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = ip + ":12345"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec.Code
	}

	// Burst of 2 allowed, third request rejected.
	if got := req("10.0.0.1"); got != http.StatusOK {
		t.Errorf("first request = %d", got)
	}
	if got := req("10.0.0.1"); got != http.StatusOK {
		t.Errorf("second request = %d", got)
	}
	if got := req("10.0.0.1"); got != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", got)
	}

	// Other clients are unaffected.
	if got := req("10.0.0.2"); got != http.StatusOK {
		t.Errorf("other client = %d, want 200", got)
	}
}

func TestMetricsMiddleware(t *testing.T) {
	reg := metric.NewRegistry()
	h := Metrics(reg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/ghosts", nil))

	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if !strings.Contains(rec.Body.String(), `docfold_http_requests_total{method="GET",status="404"} 1`) {
		t.Error("request not counted")
	}
}

func TestRecover(t *testing.T) {
	h := Recover(slog.New(slog.DiscardHandler))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestAudit(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}), RequestID(), Audit(log))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/things", nil))

	out := buf.String()
	if !strings.Contains(out, `"path":"/things"`) {
		t.Errorf("audit log missing path: %s", out)
	}
	if !strings.Contains(out, `"status":400`) {
		t.Errorf("audit log missing status: %s", out)
	}
	if !strings.Contains(out, `"level":"WARN"`) {
		t.Errorf("client error not logged at warn: %s", out)
	}
}

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name   string
		setup  func(*http.Request)
		remote string
		want   string
	}{
		{
			name:   "x-forwarded-for first entry",
			setup:  func(r *http.Request) { r.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8") },
			remote: "9.9.9.9:80",
			want:   "1.2.3.4",
		},
		{
			name:   "x-real-ip",
			setup:  func(r *http.Request) { r.Header.Set("X-Real-IP", "1.2.3.4") },
			remote: "9.9.9.9:80",
			want:   "1.2.3.4",
		},
		{
			name:   "remote addr ipv4",
			setup:  func(*http.Request) {},
			remote: "9.9.9.9:80",
			want:   "9.9.9.9",
		},
		{
			name:   "remote addr ipv6",
			setup:  func(*http.Request) {},
			remote: "[::1]:8080",
			want:   "::1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tc.remote
			tc.setup(r)
			if got := getClientIP(r); got != tc.want {
				t.Errorf("getClientIP = %q, want %q", got, tc.want)
			}
		})
	}
}
