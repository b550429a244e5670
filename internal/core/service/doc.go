// Package service provides the domain services for DocFold.
//
// Services contain the business logic and orchestrate operations on
// domain models over the storage layer. Storage dependencies are
// injected through interfaces so services stay testable with mocks.
//
// This package contains:
//
//   - SessionStore: in-memory session table with token issue,
//     revocation, and identity resolution
//   - CredentialService: per-user credential records in the reserved
//     "auth" folder, with a pluggable password scheme
//   - TodoService: the fixed "todos" folder keyed by username
//
// Services are safe for concurrent use.
package service
