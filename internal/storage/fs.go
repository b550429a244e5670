// Package storage provides folder-scoped JSON document storage for DocFold.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yndnr/docfold-go/internal/core/domain"
)

// FSStore stores documents as <root>/<folder>/<key>.json files.
//
// Writes are a single os.WriteFile call: there is no atomicity beyond
// what one write syscall gives, and two concurrent writers to the same
// (folder, key) interleave last-write-wins. That matches the service's
// concurrency contract; the filesystem is the database.
type FSStore struct {
	root   string
	logger *slog.Logger
}

// NewFSStore creates a filesystem-backed store rooted at dir,
// creating the root directory if needed.
func NewFSStore(dir string, logger *slog.Logger) (*FSStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("fsstore: dir is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("fsstore: create root: %w", err)
	}
	return &FSStore{root: dir, logger: logger}, nil
}

// Root returns the storage root directory.
func (s *FSStore) Root() string {
	return s.root
}

// List returns the keys of all .json documents in a folder.
func (s *FSStore) List(_ context.Context, folder string) ([]string, error) {
	if err := ValidateName(folder); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(filepath.Join(s.root, folder))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrFolderNotFound.WithDetails(folder)
		}
		return nil, domain.ErrStorage.WithCause(err)
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, Ext) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, Ext))
	}
	return keys, nil
}

// Get reads a document's raw JSON bytes.
func (s *FSStore) Get(_ context.Context, folder, key string) ([]byte, error) {
	if err := validateNames(folder, key); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.docPath(folder, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrDocumentNotFound.WithDetails(folder + "/" + key)
		}
		return nil, domain.ErrStorage.WithCause(err)
	}
	return data, nil
}

// Put writes a document, creating the folder if absent.
func (s *FSStore) Put(_ context.Context, folder, key string, value []byte) error {
	if err := validateNames(folder, key); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Join(s.root, folder), 0o750); err != nil {
		return domain.ErrStorage.WithCause(err)
	}
	if err := os.WriteFile(s.docPath(folder, key), value, 0o640); err != nil {
		return domain.ErrStorage.WithCause(err)
	}

	s.logger.Debug("document written", "folder", folder, "key", key, "bytes", len(value))
	return nil
}

// Delete removes a document. A missing folder reports success without
// deleting anything; a missing file in an existing folder is an error.
func (s *FSStore) Delete(_ context.Context, folder, key string) error {
	if err := validateNames(folder, key); err != nil {
		return err
	}

	if _, err := os.Stat(filepath.Join(s.root, folder)); errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("delete on missing folder", "folder", folder, "key", key)
		return nil
	}

	if err := os.Remove(s.docPath(folder, key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ErrDocumentNotFound.WithDetails(folder + "/" + key)
		}
		return domain.ErrStorage.WithCause(err)
	}

	s.logger.Debug("document deleted", "folder", folder, "key", key)
	return nil
}

// Close implements Store. The filesystem backend holds no resources.
func (s *FSStore) Close() error {
	return nil
}

func (s *FSStore) docPath(folder, key string) string {
	return filepath.Join(s.root, folder, key+Ext)
}
