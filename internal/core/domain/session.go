// Package domain defines the core domain models for DocFold.
package domain

// AnonymousUser is the identity substituted for unauthenticated callers
// when auth enforcement is disabled.
const AnonymousUser = "UNKNOWN_USER"

// Session binds a username to its active bearer token.
//
// At most one session exists per username; re-login returns the same
// token. Sessions live in process memory only and do not survive a
// restart.
type Session struct {
	// User is the username that authenticated.
	User string `json:"user"`

	// Token is the opaque bearer value, empty for the anonymous identity.
	Token string `json:"auth_token"`
}

// Anonymous returns the fallback identity used when auth enforcement
// is disabled and no credentials were presented.
func Anonymous() *Session {
	return &Session{User: AnonymousUser}
}

// IsAnonymous reports whether this is the fallback identity.
func (s *Session) IsAnonymous() bool {
	return s.Token == "" && s.User == AnonymousUser
}
