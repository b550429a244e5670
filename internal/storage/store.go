// Package storage provides folder-scoped JSON document storage for DocFold.
package storage

import (
	"context"
	"strings"

	"github.com/yndnr/docfold-go/internal/core/domain"
)

// Ext is the filename extension for stored documents.
const Ext = ".json"

// Store is the folder-scoped document storage interface.
//
// Values are raw JSON bytes; callers are responsible for ensuring they
// hold valid JSON. Writes are whole-value replacement, never a merge.
// Implementations must be safe for concurrent use.
type Store interface {
	// List returns the document keys in a folder, in enumeration order
	// (not sorted). Returns domain.ErrFolderNotFound if the folder does
	// not exist.
	List(ctx context.Context, folder string) ([]string, error)

	// Get returns the stored value. Returns domain.ErrDocumentNotFound
	// if no document exists at (folder, key).
	Get(ctx context.Context, folder, key string) ([]byte, error)

	// Put stores a value, creating the folder if absent and fully
	// replacing any prior value at (folder, key).
	Put(ctx context.Context, folder, key string, value []byte) error

	// Delete removes a document. A missing folder is a successful
	// no-op; a missing document inside an existing folder returns
	// domain.ErrDocumentNotFound.
	Delete(ctx context.Context, folder, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// ValidateName rejects names that are empty or could escape the
// storage root. Folder and key names are plain path segments: no
// separators, no "." or "..".
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return domain.ErrInvalidName.WithDetails(name)
	case strings.ContainsAny(name, `/\`):
		return domain.ErrInvalidName.WithDetails(name)
	case strings.ContainsRune(name, 0):
		return domain.ErrInvalidName.WithDetails(name)
	}
	return nil
}

// validateNames checks a folder and key pair in one call.
func validateNames(folder, key string) error {
	if err := ValidateName(folder); err != nil {
		return err
	}
	return ValidateName(key)
}
