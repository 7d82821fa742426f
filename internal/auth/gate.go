// Package auth holds the authorization gate separating public reads from
// admin writes. The model is deliberately small: one shared secret, exact
// equality, no sessions and no expiry. Swapping it for a hashed-credential
// or token-issuance scheme later only touches this package.
package auth

import (
	"crypto/subtle"
	"strings"
)

const bearerPrefix = "Bearer "

// Gate decides whether a presented credential may perform a mutation.
// Stateless; every request is checked independently.
type Gate struct {
	secret string
}

// NewGate creates a gate for the configured admin secret.
func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// Authorize grants iff the presented credential exactly equals the admin
// secret. The comparison is constant-time; an empty credential (absent or
// malformed bearer header) is always denied.
func (g *Gate) Authorize(credential string) bool {
	if credential == "" || g.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(credential), []byte(g.secret)) == 1
}

// BearerToken extracts the credential from an Authorization header value.
// A missing header or a scheme other than Bearer yields the empty string,
// which the gate treats identically to a wrong credential.
func BearerToken(header string) string {
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return header[len(bearerPrefix):]
}
