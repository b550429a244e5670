// Package storage provides folder-scoped JSON document storage for DocFold.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v3"

	"github.com/yndnr/docfold-go/internal/core/domain"
)

// BadgerConfig contains Badger-specific tuning parameters.
type BadgerConfig struct {
	// GCInterval is the interval between value log GC runs.
	// Default: 10m. Zero disables the GC loop.
	GCInterval time.Duration `koanf:"gc_interval"`

	// GCThreshold is the value log GC discard ratio (0.0-1.0).
	// Default: 0.5.
	GCThreshold float64 `koanf:"gc_threshold"`

	// SyncWrites makes every write durable before acknowledgment.
	// Default: false; the service promises no more durability than a
	// single write syscall.
	SyncWrites bool `koanf:"sync_writes"`
}

// DefaultBadgerConfig returns the default Badger tuning parameters.
func DefaultBadgerConfig() BadgerConfig {
	return BadgerConfig{
		GCInterval:  10 * time.Minute,
		GCThreshold: 0.5,
	}
}

// BadgerStore implements Store on an embedded Badger database.
//
// Documents live under the key "<folder>/<key>"; since validated
// names cannot contain a separator, the first slash always splits
// folder from key. A folder exists iff at least one document key
// carries its prefix, which keeps the filesystem backend's
// folder-not-found semantics without tracking folders separately.
type BadgerStore struct {
	db     *badger.DB
	cfg    BadgerConfig
	logger *slog.Logger

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewBadgerStore opens (or creates) a Badger-backed store in dir.
func NewBadgerStore(dir string, cfg BadgerConfig, logger *slog.Logger) (*BadgerStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("badgerstore: dir is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = &badgerLogger{logger: logger}
	opts.SyncWrites = cfg.SyncWrites

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badgerstore: open db: %w", err)
	}

	s := &BadgerStore{
		db:     db,
		cfg:    cfg,
		logger: logger,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}

	go s.gcLoop()

	logger.Info("badger store opened", "dir", dir, "gc_interval", cfg.GCInterval)
	return s, nil
}

// List returns the keys of all documents in a folder.
func (s *BadgerStore) List(_ context.Context, folder string) ([]string, error) {
	if err := ValidateName(folder); err != nil {
		return nil, err
	}

	prefix := []byte(folder + "/")
	var keys []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			k := it.Item().Key()
			keys = append(keys, string(k[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, domain.ErrStorage.WithCause(err)
	}

	if len(keys) == 0 {
		return nil, domain.ErrFolderNotFound.WithDetails(folder)
	}
	return keys, nil
}

// Get returns a document's raw JSON bytes.
func (s *BadgerStore) Get(_ context.Context, folder, key string) ([]byte, error) {
	if err := validateNames(folder, key); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.docKey(folder, key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, domain.ErrDocumentNotFound.WithDetails(folder + "/" + key)
		}
		return nil, domain.ErrStorage.WithCause(err)
	}
	return value, nil
}

// Put stores a document, fully replacing any prior value.
func (s *BadgerStore) Put(_ context.Context, folder, key string, value []byte) error {
	if err := validateNames(folder, key); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.docKey(folder, key), value)
	})
	if err != nil {
		return domain.ErrStorage.WithCause(err)
	}

	s.logger.Debug("document written", "folder", folder, "key", key, "bytes", len(value))
	return nil
}

// Delete removes a document, preserving the filesystem backend's
// quirk: a missing folder is a successful no-op.
func (s *BadgerStore) Delete(_ context.Context, folder, key string) error {
	if err := validateNames(folder, key); err != nil {
		return err
	}

	prefix := []byte(folder + "/")
	docKey := s.docKey(folder, key)

	err := s.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix})
		folderExists := false
		it.Rewind()
		if it.Valid() {
			folderExists = true
		}
		it.Close()

		if !folderExists {
			s.logger.Debug("delete on missing folder", "folder", folder, "key", key)
			return nil
		}

		if _, err := txn.Get(docKey); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return domain.ErrDocumentNotFound.WithDetails(folder + "/" + key)
			}
			return err
		}
		return txn.Delete(docKey)
	})
	if err != nil {
		if domain.IsDomainError(err, "") {
			return err
		}
		return domain.ErrStorage.WithCause(err)
	}
	return nil
}

// Close stops the GC loop and closes the database.
func (s *BadgerStore) Close() error {
	close(s.stopCh)
	<-s.doneCh
	return s.db.Close()
}

func (s *BadgerStore) docKey(folder, key string) []byte {
	return []byte(folder + "/" + key)
}

// gcLoop runs periodic value log garbage collection.
func (s *BadgerStore) gcLoop() {
	defer close(s.doneCh)

	if s.cfg.GCInterval <= 0 {
		return
	}

	ticker := time.NewTicker(s.cfg.GCInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			for {
				err := s.db.RunValueLogGC(s.cfg.GCThreshold)
				if err != nil {
					if !errors.Is(err, badger.ErrNoRewrite) {
						s.logger.Warn("badger gc failed", "error", err)
					}
					break
				}
			}
		case <-s.stopCh:
			return
		}
	}
}

// badgerLogger adapts slog to Badger's logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
