// Package token provides session token generation.
package token

import "github.com/google/uuid"

// Length is the fixed length of a generated token:
// two 36-character UUIDs joined by a dash.
const Length = 73

// Generate returns a new opaque session token formed from two
// concatenated random UUIDs. Clients treat the token as an opaque
// bearer value; the UUID-pair shape is kept for compatibility with
// existing consumers.
func Generate() string {
	return uuid.NewString() + "-" + uuid.NewString()
}
