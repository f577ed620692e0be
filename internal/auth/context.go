package auth

import "context"

type ctxKey struct{}

// NewContext attaches a session to the context.
func NewContext(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, session)
}

// FromContext returns the session attached by the auth middleware.
func FromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(ctxKey{}).(*Session)

	return session, ok
}
