package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainsession "github.com/kylianerp/onboarding-portal/internal/domain/session"
)

func TestOfferStore_SaveAndGet(t *testing.T) {
	client := setupTestRedis(t)

	store := NewOfferStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", domainsession.OfferAccepted))

	status, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, domainsession.OfferAccepted, status)
}

func TestOfferStore_DefaultsToPending(t *testing.T) {
	client := setupTestRedis(t)

	store := NewOfferStore(client)

	status, err := store.Get(context.Background(), "never-decided")
	require.NoError(t, err)
	assert.Equal(t, domainsession.OfferPending, status)
}

func TestOfferStore_RejectsInvalidStatus(t *testing.T) {
	client := setupTestRedis(t)

	store := NewOfferStore(client)

	err := store.Save(context.Background(), "sess-1", domainsession.OfferStatus("maybe"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid offer status")
}

func TestOfferStore_Delete(t *testing.T) {
	client := setupTestRedis(t)

	store := NewOfferStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-del", domainsession.OfferRejected))
	require.NoError(t, store.Delete(ctx, "sess-del"))

	status, err := store.Get(ctx, "sess-del")
	require.NoError(t, err)
	assert.Equal(t, domainsession.OfferPending, status)
}
