// Package session provides the server-side session store: an opaque
// client-held token mapped to the authenticated user. The store is an
// explicit dependency injected into the handlers, with a Redis
// implementation for production and an in-memory one for tests.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
)

// Session binds a token to a user for the span between login and logout.
type Session struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
}

// Store manages sessions by opaque token.
type Store interface {
	// Create stores the session under a freshly generated token and
	// returns the token.
	Create(ctx context.Context, s Session) (string, error)
	// Get returns the session for a token. The bool is false when the
	// token is unknown or expired; that is not an error.
	Get(ctx context.Context, token string) (Session, bool, error)
	// Delete destroys the session. Deleting an unknown token is a no-op.
	Delete(ctx context.Context, token string) error
}

// newToken generates a 256-bit random token, base64url-encoded.
func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
