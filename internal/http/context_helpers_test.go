package httpx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	domainsession "github.com/kylianerp/onboarding-portal/internal/domain/session"
)

func TestSessionContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetSessionFromContext(ctx))

	sess := &domainsession.Session{ID: "sess-1", IsAuthenticated: true}
	ctx = SetSessionInContext(ctx, sess)
	assert.Equal(t, sess, GetSessionFromContext(ctx))
}

func TestSetSessionInContext_NilSessionIsNoop(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, SetSessionInContext(ctx, nil))
}

func TestClientIDContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetClientIDFromContext(ctx))

	ctx = SetClientIDInContext(ctx, "client-1")
	assert.Equal(t, "client-1", GetClientIDFromContext(ctx))
}

func TestSetClientIDInContext_EmptyIsNoop(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, SetClientIDInContext(ctx, ""))
}
