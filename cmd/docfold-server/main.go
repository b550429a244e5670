// Package main provides the entry point for docfold-server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/yndnr/docfold-go/internal/core/service"
	"github.com/yndnr/docfold-go/internal/infra/buildinfo"
	"github.com/yndnr/docfold-go/internal/infra/confloader"
	"github.com/yndnr/docfold-go/internal/infra/shutdown"
	"github.com/yndnr/docfold-go/internal/server/config"
	"github.com/yndnr/docfold-go/internal/server/httpserver"
	"github.com/yndnr/docfold-go/internal/storage"
	"github.com/yndnr/docfold-go/internal/telemetry/logger"
	"github.com/yndnr/docfold-go/internal/telemetry/metric"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("docfold-server %s\n", buildinfo.String())
		return nil
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	slog.SetDefault(log)

	log.Info("starting docfold-server",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"config", *configFile,
		"auth_enabled", cfg.Auth.Enabled,
	)

	docs, err := initStorage(cfg, log)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	scheme, err := service.NewPasswordScheme(cfg.Auth.PasswordScheme)
	if err != nil {
		return fmt.Errorf("init password scheme: %w", err)
	}

	sessions := service.NewSessionStore(log)
	creds := service.NewCredentialService(docs, scheme, log)
	todos := service.NewTodoService(docs)

	var registry *metric.Registry
	if cfg.Metrics.Enabled {
		registry = metric.NewRegistry()
		registry.RegisterSessionsGauge(func() float64 {
			return float64(sessions.Count())
		})
	}

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		Sessions:     sessions,
		Credentials:  creds,
		Todos:        todos,
		Documents:    docs,
		Metrics:      registry,
		Logger:       log,
		AuthRequired: cfg.Auth.Enabled,
		RateLimit:    cfg.Server.RateLimit,
		RateBurst:    cfg.Server.RateBurst,
		EnableAudit:  true,
	})

	httpServer := httpserver.New(cfg.Server.Addr, router)

	shutdownHandler := shutdown.NewHandler(30 * time.Second)
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})
	shutdownHandler.OnShutdown(func(context.Context) error {
		log.Info("closing document store")
		return docs.Close()
	})

	// Reload the log level when the config file changes on disk.
	if *configFile != "" {
		watcher, err := watchLogLevel(*configFile, log)
		if err != nil {
			log.Warn("config watcher unavailable", "error", err)
		} else {
			shutdownHandler.OnShutdown(func(context.Context) error {
				return watcher.Stop()
			})
		}
	}

	go func() {
		log.Info("HTTP server listening", "addr", cfg.Server.Addr)

		var err error
		if cfg.Server.TLSCertFile != "" && cfg.Server.TLSKeyFile != "" {
			err = httpServer.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile, log)
		} else {
			err = httpServer.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from file and environment.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	// Legacy toggle from the first generation of the service.
	if os.Getenv("AUTH_ENABLED") == "1" {
		cfg.Auth.Enabled = true
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// initStorage opens the configured document store backend.
func initStorage(cfg *config.ServerConfig, log *slog.Logger) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "badger":
		badgerCfg := storage.BadgerConfig{
			SyncWrites:  cfg.Storage.Badger.SyncWrites,
			GCInterval:  cfg.Storage.Badger.GCInterval,
			GCThreshold: cfg.Storage.Badger.GCThreshold,
		}
		return storage.NewBadgerStore(cfg.Storage.DataDir, badgerCfg, log)
	default:
		return storage.NewFSStore(cfg.Storage.DataDir, log)
	}
}

// watchLogLevel re-reads the config file on change and applies the
// log level without a restart.
func watchLogLevel(configFile string, log *slog.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return nil, err
	}

	watcher.OnChange(func(string) {
		reloaded := config.Default()
		loader := confloader.NewLoader(confloader.WithConfigFile(configFile))
		if err := loader.Load(reloaded); err != nil {
			log.Warn("config reload failed", "error", err)
			return
		}
		logger.SetLevel(reloaded.Log.Level)
		log.Info("log level applied", "level", reloaded.Log.Level)
	})

	if err := watcher.Watch(configFile); err != nil {
		watcher.Stop()
		return nil, err
	}
	watcher.StartAsync()

	return watcher, nil
}
