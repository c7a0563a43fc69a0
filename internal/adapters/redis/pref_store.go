package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/kylianerp/onboarding-portal/internal/ports"
)

// PreferenceStore persists per-client UI preferences in Redis. Entries are
// keyed by the stable client identifier and carry no TTL, so preferences
// like dark mode survive logout.
type PreferenceStore struct {
	client redis.UniversalClient
	prefix string
}

// NewPreferenceStore creates a new Redis-based preference store.
func NewPreferenceStore(client redis.UniversalClient) *PreferenceStore {
	return &PreferenceStore{
		client: client,
		prefix: "prefs:",
	}
}

func (s *PreferenceStore) Save(ctx context.Context, clientID string, prefs ports.Preferences) error {
	if clientID == "" {
		return errors.New("client ID cannot be empty")
	}

	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	return s.client.Set(ctx, s.prefix+clientID, data, 0).Err()
}

// Get returns the stored preferences, or zero-value defaults when the
// client has never saved any.
func (s *PreferenceStore) Get(ctx context.Context, clientID string) (ports.Preferences, error) {
	if clientID == "" {
		return ports.Preferences{}, nil
	}

	data, err := s.client.Get(ctx, s.prefix+clientID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.Preferences{}, nil
		}
		return ports.Preferences{}, fmt.Errorf("redis get: %w", err)
	}

	var prefs ports.Preferences
	if unmarshalErr := json.Unmarshal([]byte(data), &prefs); unmarshalErr != nil {
		return ports.Preferences{}, fmt.Errorf("unmarshal preferences: %w", unmarshalErr)
	}
	return prefs, nil
}
