// Package httpserver provides the HTTP/HTTPS server for DocFold.
//
// This package implements the external API using stdlib net/http:
//
//   - Auth endpoints: /auth, /signup, /change-password, /logout
//   - Todo endpoints: /todos
//   - Document endpoints: /{folder}, /{folder}/{file}
//   - Info page: /
//   - Metrics: /metrics
//
// Features:
//
//   - TLS support with automatic certificate reload
//   - Middleware chain: Recover, CORS, RequestID, RateLimit, Metrics, Audit
//   - Graceful shutdown with configurable timeout
package httpserver
