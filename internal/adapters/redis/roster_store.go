package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/kylianerp/onboarding-portal/internal/domain/employee"
)

// RosterStore caches team rosters in Redis, keyed by the stable client
// identifier. Entries carry no TTL so a cached roster is still available
// after logout, the same way a browser cache would be.
type RosterStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRosterStore creates a new Redis-based roster cache.
func NewRosterStore(client redis.UniversalClient) *RosterStore {
	return &RosterStore{
		client: client,
		prefix: "roster:",
	}
}

func (s *RosterStore) Save(ctx context.Context, clientID string, roster []employee.Employee) error {
	if clientID == "" {
		return errors.New("client ID cannot be empty")
	}

	data, err := json.Marshal(roster)
	if err != nil {
		return fmt.Errorf("marshal roster: %w", err)
	}

	return s.client.Set(ctx, s.prefix+clientID, data, 0).Err()
}

func (s *RosterStore) Get(ctx context.Context, clientID string) ([]employee.Employee, error) {
	if clientID == "" {
		return nil, ErrNotFound
	}

	data, err := s.client.Get(ctx, s.prefix+clientID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var roster []employee.Employee
	if unmarshalErr := json.Unmarshal([]byte(data), &roster); unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal roster: %w", unmarshalErr)
	}
	return roster, nil
}

func (s *RosterStore) Delete(ctx context.Context, clientID string) error {
	if clientID == "" {
		return nil
	}
	return s.client.Del(ctx, s.prefix+clientID).Err()
}
