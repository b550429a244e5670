// Package config defines the server configuration structure.
package config

import "time"

// ServerConfig is the root configuration for docfold-server.
type ServerConfig struct {
	Server  ServerSection  `koanf:"server"`
	Auth    AuthSection    `koanf:"auth"`
	Storage StorageSection `koanf:"storage"`
	Log     LogSection     `koanf:"log"`
	Metrics MetricsSection `koanf:"metrics"`
}

// ServerSection configures the HTTP endpoint.
type ServerSection struct {
	Addr        string `koanf:"addr"`
	TLSCertFile string `koanf:"tls_cert_file"`
	TLSKeyFile  string `koanf:"tls_key_file"`

	// RateLimit is the per-client request budget in requests per
	// second. Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`
}

// AuthSection configures authentication behavior.
type AuthSection struct {
	// Enabled gates token checks on document routes. When false,
	// unauthenticated requests act as the anonymous user.
	Enabled bool `koanf:"enabled"`

	// PasswordScheme selects how stored passwords are sealed:
	// "plain" or "bcrypt".
	PasswordScheme string `koanf:"password_scheme"`
}

// StorageSection configures the document store.
type StorageSection struct {
	// Backend selects the store implementation: "fs" or "badger".
	Backend string `koanf:"backend"`

	// DataDir is the root directory for document data.
	DataDir string `koanf:"data_dir"`

	Badger BadgerSection `koanf:"badger"`
}

// BadgerSection tunes the badger backend.
type BadgerSection struct {
	SyncWrites  bool          `koanf:"sync_writes"`
	GCInterval  time.Duration `koanf:"gc_interval"`
	GCThreshold float64       `koanf:"gc_threshold"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// MetricsSection configures the Prometheus endpoint.
type MetricsSection struct {
	Enabled bool `koanf:"enabled"`
}
