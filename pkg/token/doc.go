// Package token provides session token generation.
package token
