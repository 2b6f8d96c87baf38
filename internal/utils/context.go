package utils

import (
	"context"
)

// CallerIdentity is the already-validated identity of the authenticated
// caller, extracted from token claims by the auth middleware. Services
// receive it as a plain value and never touch the token themselves.
type CallerIdentity struct {
	UserID int64
}

// contextKey is a private type for context keys so that no other package
// can collide with values stored by this one.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the key under which the auth middleware stores the
// authenticated CallerIdentity in the request context.
var CallerCtxKey = contextKey("caller")

// GetCallerFromContext retrieves the authenticated caller identity from
// the context. ok is false when the value is missing or of the wrong type.
func GetCallerFromContext(ctx context.Context) (CallerIdentity, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(CallerIdentity)
	return caller, ok
}
