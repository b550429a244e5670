// Package httpserver provides the HTTP/HTTPS server for DocFold.
package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/yndnr/docfold-go/internal/core/service"
	"github.com/yndnr/docfold-go/internal/server/httpserver/handler"
	"github.com/yndnr/docfold-go/internal/storage"
	"github.com/yndnr/docfold-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// Sessions holds the in-memory session table.
	Sessions *service.SessionStore

	// Credentials manages stored user records.
	Credentials *service.CredentialService

	// Todos is the per-user todo list service.
	Todos *service.TodoService

	// Documents is the folder-scoped document store.
	Documents storage.Store

	// Metrics is the Prometheus registry. Nil disables the /metrics
	// endpoint and request instrumentation.
	Metrics *metric.Registry

	// Logger for request logging.
	Logger *slog.Logger

	// AuthRequired rejects unauthenticated document requests instead
	// of substituting the anonymous identity.
	AuthRequired bool

	// RateLimit is the per-IP request budget (requests/second).
	// Zero disables rate limiting.
	RateLimit float64
	RateBurst int

	// EnableAudit enables audit logging for all requests.
	EnableAudit bool
}

// NewRouter creates and configures the HTTP router with all routes
// and middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	h := handler.New(handler.Config{
		Sessions:     cfg.Sessions,
		Credentials:  cfg.Credentials,
		Todos:        cfg.Todos,
		Documents:    cfg.Documents,
		Metrics:      cfg.Metrics,
		Logger:       cfg.Logger,
		AuthRequired: cfg.AuthRequired,
	})

	// Order: Recover -> CORS -> RequestID -> RateLimit -> Metrics -> Audit -> Handler
	middlewares := []Middleware{
		Recover(cfg.Logger),
		CORS(),
		RequestID(),
	}
	if cfg.RateLimit > 0 {
		middlewares = append(middlewares, RateLimit(cfg.RateLimit, cfg.RateBurst))
	}
	if cfg.Metrics != nil {
		middlewares = append(middlewares, Metrics(cfg.Metrics))
	}
	if cfg.EnableAudit {
		middlewares = append(middlewares, Audit(cfg.Logger))
	}

	mainHandler := Chain(h, middlewares...)

	mux := http.NewServeMux()

	// The literal /metrics route wins over the handler's {folder}
	// pattern for GET /metrics.
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", Chain(cfg.Metrics.Handler(),
			Recover(cfg.Logger),
			CORS(),
			RequestID(),
		))
	}

	mux.Handle("/", mainHandler)

	return mux
}
