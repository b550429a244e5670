// Package service provides the domain services for DocFold.
package service

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordScheme seals passwords for storage and compares presented
// passwords against stored ones. Keeping the comparison behind an
// interface lets hashing be swapped in without touching handlers or
// the credential file format.
type PasswordScheme interface {
	// Name identifies the scheme ("plain", "bcrypt").
	Name() string

	// Seal transforms a plaintext password into its stored form.
	Seal(plain string) (string, error)

	// Compare reports whether given matches the stored form.
	Compare(stored, given string) bool
}

// NewPasswordScheme returns the scheme for the given config name.
func NewPasswordScheme(name string) (PasswordScheme, error) {
	switch name {
	case "", "plain":
		return PlainScheme{}, nil
	case "bcrypt":
		return BcryptScheme{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", name)
	}
}

// PlainScheme stores passwords as-is and compares them byte for byte.
// This is the wire-compatible default inherited from the original
// deployment; credential files remain readable by it.
type PlainScheme struct{}

func (PlainScheme) Name() string { return "plain" }

func (PlainScheme) Seal(plain string) (string, error) { return plain, nil }

func (PlainScheme) Compare(stored, given string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

// BcryptScheme stores bcrypt hashes. Existing plaintext credential
// files will no longer verify once this scheme is enabled.
type BcryptScheme struct{}

func (BcryptScheme) Name() string { return "bcrypt" }

func (BcryptScheme) Seal(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

func (BcryptScheme) Compare(stored, given string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
}
