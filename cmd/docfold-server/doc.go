// Package main provides the entry point for docfold-server.
//
// The server is the core DocFold service that provides:
//
//   - HTTP/HTTPS API for folder-scoped JSON document storage
//   - Session-token authentication with optional enforcement
//   - Per-user todo documents
//   - Prometheus metrics at /metrics
//
// Usage:
//
//	docfold-server [flags]
//	docfold-server --config /path/to/config.yaml
//
// The server loads configuration, initializes the document store, and
// starts the HTTP listener.
package main
