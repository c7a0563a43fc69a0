package httpx

import (
	"context"

	domainsession "github.com/kylianerp/onboarding-portal/internal/domain/session"
)

// sessionKey is an unexported context key type to avoid collisions across
// packages. Centralized here so all handlers and middleware use the same key.
type sessionKey struct{}

// SetSessionInContext returns a child context that carries the given session.
// If session is nil, the original ctx is returned unchanged.
func SetSessionInContext(ctx context.Context, sess *domainsession.Session) context.Context {
	if sess == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, sess)
}

// GetSessionFromContext retrieves the session from the request context, or
// nil when the request is unauthenticated.
func GetSessionFromContext(ctx context.Context) *domainsession.Session {
	if sess, ok := ctx.Value(sessionKey{}).(*domainsession.Session); ok {
		return sess
	}
	return nil
}

// clientIDKey is an unexported context key type for the stable per-browser
// client identifier.
type clientIDKey struct{}

// SetClientIDInContext returns a child context carrying the client id.
func SetClientIDInContext(ctx context.Context, clientID string) context.Context {
	if clientID == "" {
		return ctx
	}
	return context.WithValue(ctx, clientIDKey{}, clientID)
}

// GetClientIDFromContext returns the client id for the request, or "" when
// the identification middleware did not run.
func GetClientIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(clientIDKey{}).(string); ok {
		return id
	}
	return ""
}
