// Package domain defines the core domain models for DocFold.
package domain

// Credential is the persisted record for one user, stored as a single
// JSON document in the reserved "auth" folder. File existence is the
// source of truth for "user exists".
type Credential struct {
	// User is the username, which doubles as the document key.
	User string `json:"user"`

	// Password is the stored password. With the default plain scheme
	// this is the plaintext; with the bcrypt scheme it is the hash.
	Password string `json:"password"`
}
