// Package domain defines the core domain models for DocFold.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business error with a structured code.
// The last four digits of a code encode the HTTP status the error
// maps to on the wire (e.g. "DF-DOC-4040" maps to 404).
type DomainError struct {
	Code    string // Error code (e.g. "DF-DOC-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support, comparing by code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks whether the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Authentication errors (AUTH).
var (
	// ErrUnauthenticated indicates the caller presented no valid session.
	ErrUnauthenticated = NewDomainError("DF-AUTH-4010", "not logged in")

	// ErrInvalidPassword indicates a password mismatch during login.
	ErrInvalidPassword = NewDomainError("DF-AUTH-4011", "invalid password")
)

// User / credential errors (USER).
var (
	// ErrUserNotFound indicates no credential record exists for the user.
	ErrUserNotFound = NewDomainError("DF-USER-4040", "user not found")

	// ErrUserExists indicates a signup collision.
	// The wire protocol maps this to 401 rather than 409.
	ErrUserExists = NewDomainError("DF-USER-4010", "user already exists")

	// ErrChangePasswordRejected indicates a change-password request with
	// missing fields, identical old/new passwords, or a wrong original
	// password. The wire protocol responds 301 to these; the distinct
	// code keeps callers from special-casing a redirect status.
	ErrChangePasswordRejected = NewDomainError("DF-USER-3010", "change password rejected")
)

// Document storage errors (FLDR / DOC / NAME).
var (
	// ErrFolderNotFound indicates the requested folder does not exist.
	ErrFolderNotFound = NewDomainError("DF-FLDR-4040", "folder not found")

	// ErrDocumentNotFound indicates the requested document does not exist.
	ErrDocumentNotFound = NewDomainError("DF-DOC-4040", "document not found")

	// ErrInvalidName indicates a folder or key name that is empty or
	// could escape the storage root.
	ErrInvalidName = NewDomainError("DF-NAME-4000", "invalid folder or document name")
)

// System errors (SYS).
var (
	// ErrStorage indicates an unexpected storage layer failure.
	ErrStorage = NewDomainError("DF-SYS-5000", "storage error")

	// ErrBadRequest indicates a malformed request body.
	ErrBadRequest = NewDomainError("DF-SYS-4000", "bad request")
)
