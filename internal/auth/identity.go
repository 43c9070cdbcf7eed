// Package auth provides the credential service: password hashing, session
// token signing and verification, and the authenticated identity carried
// through request contexts.
package auth

import "context"

// Identity is the authenticated caller attached to a request. A nil
// *Identity means the request is unauthenticated; services decide whether
// that matters.
type Identity struct {
	UserID uint
	Email  string
}

type contextKey struct{}

var identityKey contextKey

// WithIdentity returns a context carrying the given identity.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// FromContext extracts the identity from ctx, if any.
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey).(*Identity)
	if !ok || id == nil {
		return nil, false
	}
	return id, true
}
