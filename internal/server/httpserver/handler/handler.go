// Package handler provides HTTP request handlers for DocFold.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/yndnr/docfold-go/internal/core/domain"
	"github.com/yndnr/docfold-go/internal/core/service"
	"github.com/yndnr/docfold-go/internal/storage"
	"github.com/yndnr/docfold-go/internal/telemetry/metric"
)

// Config holds the handler's collaborators.
type Config struct {
	Sessions    *service.SessionStore
	Credentials *service.CredentialService
	Todos       *service.TodoService
	Documents   storage.Store

	// Metrics may be nil when instrumentation is disabled.
	Metrics *metric.Registry

	Logger *slog.Logger

	// AuthRequired controls whether requests without a token are
	// rejected or mapped to the anonymous identity.
	AuthRequired bool
}

// Handler is the main HTTP handler that routes requests to endpoint
// handlers.
type Handler struct {
	sessions     *service.SessionStore
	creds        *service.CredentialService
	todos        *service.TodoService
	docs         storage.Store
	metrics      *metric.Registry
	logger       *slog.Logger
	authRequired bool
	mux          *http.ServeMux
}

// New creates a new Handler with the given services.
func New(cfg Config) *Handler {
	h := &Handler{
		sessions:     cfg.Sessions,
		creds:        cfg.Credentials,
		todos:        cfg.Todos,
		docs:         cfg.Documents,
		metrics:      cfg.Metrics,
		logger:       cfg.Logger,
		authRequired: cfg.AuthRequired,
		mux:          http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes. Literal segments win over
// the {folder} wildcards, so /auth, /todos and friends are never
// shadowed by the document routes.
func (h *Handler) registerRoutes() {
	// Info page
	h.mux.HandleFunc("GET /{$}", h.handleInfo)

	// Auth endpoints
	h.mux.HandleFunc("POST /auth", h.handleAuth)
	h.mux.HandleFunc("POST /signup", h.handleSignup)
	h.mux.HandleFunc("POST /change-password", h.handleChangePassword)
	h.mux.HandleFunc("POST /logout", h.handleLogout)

	// Todo endpoints
	h.mux.HandleFunc("GET /todos", h.handleGetTodos)
	h.mux.HandleFunc("POST /todos", h.handlePutTodos)

	// Document endpoints
	h.mux.HandleFunc("GET /{folder}", h.handleListFolder)
	h.mux.HandleFunc("GET /{folder}/{file}", h.handleGetDocument)
	h.mux.HandleFunc("POST /{folder}/{file}", h.handlePutDocument)
	h.mux.HandleFunc("DELETE /{folder}/{file}", h.handleDeleteDocument)
}

// identity resolves the caller's session from the authorization
// header. A nil result means the request is unauthenticated.
func (h *Handler) identity(r *http.Request) *domain.Session {
	return h.sessions.Resolve(r.Header.Get("Authorization"), h.authRequired)
}

// writeJSON writes a JSON response body.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeRawJSON writes pre-serialized JSON.
func (h *Handler) writeRawJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

// unauthorized rejects the request with a bare 401.
func (h *Handler) unauthorized(w http.ResponseWriter) {
	w.WriteHeader(statusFromCode(domain.GetErrorCode(domain.ErrUnauthenticated)))
}

// handleServiceError converts service errors to HTTP responses. The
// status is carried in the domain error code's numeric suffix.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromCode(domain.GetErrorCode(err))
	if status >= 500 {
		h.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		h.writeJSON(w, status, map[string]string{"message": "internal server error"})
		return
	}
	w.WriteHeader(status)
}

// statusFromCode extracts the HTTP status from a domain error code
// such as "DF-FLDR-4040" (-> 404). Unknown codes map to 500.
func statusFromCode(code string) int {
	idx := strings.LastIndex(code, "-")
	if idx < 0 || len(code[idx+1:]) != 4 {
		return http.StatusInternalServerError
	}
	status, err := strconv.Atoi(code[idx+1 : idx+4])
	if err != nil || status < 100 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}

// countOp bumps the document operation counter when metrics are on.
func (h *Handler) countOp(op string) {
	if h.metrics != nil {
		h.metrics.DocumentOps.WithLabelValues(op).Inc()
	}
}
