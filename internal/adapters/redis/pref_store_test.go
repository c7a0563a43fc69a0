package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylianerp/onboarding-portal/internal/ports"
)

func TestPreferenceStore_SaveAndGet(t *testing.T) {
	client := setupTestRedis(t)

	store := NewPreferenceStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "client-1", ports.Preferences{DarkMode: true}))

	prefs, err := store.Get(ctx, "client-1")
	require.NoError(t, err)
	assert.True(t, prefs.DarkMode)
}

func TestPreferenceStore_GetDefaultsWhenUnset(t *testing.T) {
	client := setupTestRedis(t)

	store := NewPreferenceStore(client)

	prefs, err := store.Get(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.False(t, prefs.DarkMode)
}

func TestPreferenceStore_GetEmptyClientID(t *testing.T) {
	client := setupTestRedis(t)

	store := NewPreferenceStore(client)

	prefs, err := store.Get(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, prefs.DarkMode)
}

func TestPreferenceStore_SaveEmptyClientID(t *testing.T) {
	client := setupTestRedis(t)

	store := NewPreferenceStore(client)

	err := store.Save(context.Background(), "", ports.Preferences{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client ID cannot be empty")
}
