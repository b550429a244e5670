// Package httpserver provides the HTTP/HTTPS server for DocFold.
package httpserver

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net/http"

	"github.com/yndnr/docfold-go/internal/infra/tlscert"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	certs      *tlscert.Watcher
}

// New creates a new HTTP server.
func New(addr string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    addr,
			Handler: handler,
		},
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// ListenAndServeTLS starts the HTTPS server. Certificates are watched
// and reloaded on change, so renewals do not require a restart.
func (s *Server) ListenAndServeTLS(certFile, keyFile string, log *slog.Logger) error {
	certs, err := tlscert.NewWatcher(certFile, keyFile, tlscert.WithLogger(log))
	if err != nil {
		return err
	}
	s.certs = certs
	certs.StartAsync()

	s.httpServer.TLSConfig = &tls.Config{
		MinVersion:     tls.VersionTLS12,
		GetCertificate: certs.GetCertificate,
	}

	// Cert and key paths are empty: TLSConfig.GetCertificate supplies them.
	return s.httpServer.ListenAndServeTLS("", "")
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.certs != nil {
		s.certs.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
