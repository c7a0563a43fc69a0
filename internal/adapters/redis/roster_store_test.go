package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylianerp/onboarding-portal/internal/domain/employee"
)

func TestRosterStore_SaveAndGet(t *testing.T) {
	client := setupTestRedis(t)

	store := NewRosterStore(client)
	ctx := context.Background()

	roster := []employee.Employee{
		{ID: 1, Name: "Ada Lovelace", Position: "Engineer"},
		{ID: 2, Name: "Grace Hopper", Department: "Systems"},
	}
	require.NoError(t, store.Save(ctx, "client-1", roster))

	retrieved, err := store.Get(ctx, "client-1")
	require.NoError(t, err)
	require.Len(t, retrieved, 2)
	assert.Equal(t, "Ada Lovelace", retrieved[0].Name)
	assert.Equal(t, "Systems", retrieved[1].Department)
}

func TestRosterStore_HasNoTTL(t *testing.T) {
	client := setupTestRedis(t)

	store := NewRosterStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "client-ttl", []employee.Employee{{ID: 1}}))

	// A key without expiry reports a negative TTL.
	ttl := client.TTL(ctx, "roster:client-ttl").Val()
	assert.Less(t, ttl, time.Duration(0))
}

func TestRosterStore_GetNonExistent(t *testing.T) {
	client := setupTestRedis(t)

	store := NewRosterStore(client)

	_, err := store.Get(context.Background(), "nobody")
	assert.Equal(t, ErrNotFound, err)
}

func TestRosterStore_SaveEmptyRosterRoundTrips(t *testing.T) {
	client := setupTestRedis(t)

	store := NewRosterStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "client-empty", []employee.Employee{}))

	retrieved, err := store.Get(ctx, "client-empty")
	require.NoError(t, err)
	assert.Empty(t, retrieved)
}

func TestRosterStore_Delete(t *testing.T) {
	client := setupTestRedis(t)

	store := NewRosterStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "client-del", []employee.Employee{{ID: 1}}))
	require.NoError(t, store.Delete(ctx, "client-del"))

	_, err := store.Get(ctx, "client-del")
	assert.Equal(t, ErrNotFound, err)
}

func TestRosterStore_SaveEmptyClientID(t *testing.T) {
	client := setupTestRedis(t)

	store := NewRosterStore(client)

	err := store.Save(context.Background(), "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client ID cannot be empty")
}
