// Package tlscert provides TLS certificate management for DocFold.
//
// This package handles server certificate loading and hot-reload:
//
//   - watcher.go: Certificate reload via fsnotify
//
// The watcher plugs into tls.Config.GetCertificate so the server picks
// up renewed certificates without a restart.
package tlscert
