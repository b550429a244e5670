// Package command provides CLI command definitions for docfold-cli.
package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/docfold-go/internal/core/service"
	"github.com/yndnr/docfold-go/internal/infra/buildinfo"
	"github.com/yndnr/docfold-go/internal/storage"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "docfold-cli",
		Usage:   "DocFold data directory management tool",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			UserCommand(),
			FolderCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "data-dir",
			Aliases: []string{"d"},
			Usage:   "DocFold data directory",
			EnvVars: []string{"DOCFOLD_STORAGE_DATA_DIR"},
			Value:   "./storage",
		},
		&cli.StringFlag{
			Name:    "backend",
			Aliases: []string{"b"},
			Usage:   "Storage backend: fs or badger",
			EnvVars: []string{"DOCFOLD_STORAGE_BACKEND"},
			Value:   "fs",
		},
		&cli.StringFlag{
			Name:    "scheme",
			Aliases: []string{"s"},
			Usage:   "Password scheme: plain or bcrypt",
			EnvVars: []string{"DOCFOLD_AUTH_PASSWORD_SCHEME"},
			Value:   "plain",
		},
	}
}

// openStore opens the document store selected by the global flags.
// The caller must Close it.
func openStore(c *cli.Context) (storage.Store, error) {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	switch c.String("backend") {
	case "fs", "":
		return storage.NewFSStore(c.String("data-dir"), log)
	case "badger":
		return storage.NewBadgerStore(c.String("data-dir"), storage.DefaultBadgerConfig(), log)
	default:
		return nil, fmt.Errorf("unknown backend %q", c.String("backend"))
	}
}

// openCredentials builds a credential service over the store.
func openCredentials(c *cli.Context, docs storage.Store) (*service.CredentialService, error) {
	scheme, err := service.NewPasswordScheme(c.String("scheme"))
	if err != nil {
		return nil, err
	}
	log := slog.New(slog.DiscardHandler)
	return service.NewCredentialService(docs, scheme, log), nil
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
