// Package config defines the server configuration structure.
package config

import (
	"errors"
	"fmt"
	"os"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyAuth(&cfg.Auth); err != nil {
		return err
	}
	return verifyStorage(&cfg.Storage)
}

func verifyServer(cfg *ServerSection) error {
	if cfg.Addr == "" {
		return errors.New("server.addr is required")
	}

	// TLS is all-or-nothing: a cert without a key (or vice versa)
	// cannot serve.
	if (cfg.TLSCertFile == "") != (cfg.TLSKeyFile == "") {
		return errors.New("server.tls_cert_file and server.tls_key_file must be set together")
	}
	if cfg.TLSCertFile != "" {
		if _, err := os.Stat(cfg.TLSCertFile); err != nil {
			return fmt.Errorf("server.tls_cert_file: %w", err)
		}
		if _, err := os.Stat(cfg.TLSKeyFile); err != nil {
			return fmt.Errorf("server.tls_key_file: %w", err)
		}
	}

	if cfg.RateLimit < 0 {
		return errors.New("server.rate_limit must not be negative")
	}
	return nil
}

func verifyAuth(cfg *AuthSection) error {
	switch cfg.PasswordScheme {
	case "", "plain", "bcrypt":
		return nil
	default:
		return fmt.Errorf("auth.password_scheme %q is not supported (use plain or bcrypt)", cfg.PasswordScheme)
	}
}

func verifyStorage(cfg *StorageSection) error {
	switch cfg.Backend {
	case "fs", "badger":
	default:
		return fmt.Errorf("storage.backend %q is not supported (use fs or badger)", cfg.Backend)
	}

	if cfg.DataDir == "" {
		return errors.New("storage.data_dir is required")
	}

	// Check if data directory exists or can be created
	if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
		return errors.New("cannot create data directory: " + err.Error())
	}

	if cfg.Badger.GCThreshold < 0 || cfg.Badger.GCThreshold >= 1 {
		return errors.New("storage.badger.gc_threshold must be in [0, 1)")
	}
	return nil
}
