// Package service provides the domain services for DocFold.
package service

import (
	"log/slog"
	"sync"

	"github.com/yndnr/docfold-go/internal/core/domain"
	"github.com/yndnr/docfold-go/pkg/token"
)

// SessionStore is the in-memory session table.
//
// It holds at most one session per username and is owned by whoever
// constructs it; there is no package-level instance. All sessions are
// lost on restart. A single mutex guards both indexes so Issue and
// Revoke stay atomic under concurrent requests.
type SessionStore struct {
	mu      sync.RWMutex
	byUser  map[string]*domain.Session
	byToken map[string]*domain.Session

	logger *slog.Logger
}

// NewSessionStore creates an empty session store.
func NewSessionStore(logger *slog.Logger) *SessionStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionStore{
		byUser:  make(map[string]*domain.Session),
		byToken: make(map[string]*domain.Session),
		logger:  logger,
	}
}

// Issue returns a session token for the user. If the user already has
// an active session the existing token is returned unchanged, so
// logging in twice without a logout is idempotent.
func (s *SessionStore) Issue(username string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byUser[username]; ok {
		return existing.Token
	}

	sess := &domain.Session{User: username, Token: token.Generate()}
	s.byUser[username] = sess
	s.byToken[sess.Token] = sess

	s.logger.Debug("session issued", "user", username)
	return sess.Token
}

// Revoke removes the session with the given token, reporting whether
// one was found.
func (s *SessionStore) Revoke(tok string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byToken[tok]
	if !ok {
		return false
	}
	delete(s.byToken, tok)
	delete(s.byUser, sess.User)

	s.logger.Debug("session revoked", "user", sess.User)
	return true
}

// Resolve maps the raw authorization header value to a caller
// identity. With no header and auth not required it returns the
// anonymous identity so the service stays usable with auth disabled;
// with no header and auth required, or an unknown token, it returns
// nil (unauthenticated).
func (s *SessionStore) Resolve(authHeader string, authRequired bool) *domain.Session {
	if authHeader == "" {
		if authRequired {
			return nil
		}
		return domain.Anonymous()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.byToken[authHeader]
	if !ok {
		return nil
	}
	clone := *sess
	return &clone
}

// Count returns the number of active sessions, for the metrics gauge.
func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byUser)
}
