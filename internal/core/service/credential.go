// Package service provides the domain services for DocFold.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/yndnr/docfold-go/internal/core/domain"
	"github.com/yndnr/docfold-go/internal/storage"
)

// AuthFolder is the reserved storage folder holding one credential
// record per username.
const AuthFolder = "auth"

// CredentialService reads and writes per-user credential records.
// Each record is a whole-file JSON document at auth/<username>.json;
// the file's existence is the source of truth for "user exists".
type CredentialService struct {
	docs   storage.Store
	scheme PasswordScheme
	logger *slog.Logger
}

// NewCredentialService creates a credential service over the given
// document store.
func NewCredentialService(docs storage.Store, scheme PasswordScheme, logger *slog.Logger) *CredentialService {
	if scheme == nil {
		scheme = PlainScheme{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CredentialService{docs: docs, scheme: scheme, logger: logger}
}

// Exists reports whether a credential record exists for the user.
func (c *CredentialService) Exists(ctx context.Context, username string) (bool, error) {
	_, err := c.Load(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Load returns the credential record for the user, or
// domain.ErrUserNotFound if none exists.
func (c *CredentialService) Load(ctx context.Context, username string) (*domain.Credential, error) {
	data, err := c.docs.Get(ctx, AuthFolder, username)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) || errors.Is(err, domain.ErrFolderNotFound) {
			return nil, domain.ErrUserNotFound.WithDetails(username)
		}
		return nil, err
	}

	var cred domain.Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, domain.ErrStorage.WithCause(err)
	}
	return &cred, nil
}

// Create writes a new credential record, failing with
// domain.ErrUserExists when one is already present.
func (c *CredentialService) Create(ctx context.Context, username, password string) error {
	exists, err := c.Exists(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrUserExists.WithDetails(username)
	}

	sealed, err := c.scheme.Seal(password)
	if err != nil {
		return domain.ErrStorage.WithCause(err)
	}

	if err := c.save(ctx, &domain.Credential{User: username, Password: sealed}); err != nil {
		return err
	}

	c.logger.Info("user created", "user", username, "scheme", c.scheme.Name())
	return nil
}

// Verify checks the password for a user. It fails closed: a missing
// record returns domain.ErrUserNotFound, a wrong password
// domain.ErrInvalidPassword, nil means the password matched.
func (c *CredentialService) Verify(ctx context.Context, username, password string) error {
	cred, err := c.Load(ctx, username)
	if err != nil {
		return err
	}
	if !c.scheme.Compare(cred.Password, password) {
		return domain.ErrInvalidPassword.WithDetails(username)
	}
	return nil
}

// UpdatePassword overwrites the record's password, preserving the
// username. The write replaces the whole file.
func (c *CredentialService) UpdatePassword(ctx context.Context, username, newPassword string) error {
	cred, err := c.Load(ctx, username)
	if err != nil {
		return err
	}

	sealed, err := c.scheme.Seal(newPassword)
	if err != nil {
		return domain.ErrStorage.WithCause(err)
	}
	cred.Password = sealed

	if err := c.save(ctx, cred); err != nil {
		return err
	}

	c.logger.Info("password updated", "user", username)
	return nil
}

func (c *CredentialService) save(ctx context.Context, cred *domain.Credential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return domain.ErrStorage.WithCause(err)
	}
	return c.docs.Put(ctx, AuthFolder, cred.User, data)
}
