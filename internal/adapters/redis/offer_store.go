package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	domainsession "github.com/kylianerp/onboarding-portal/internal/domain/session"
)

// OfferStore persists the local job-offer decision per session. Entries are
// keyed by session id and removed with the session at logout.
type OfferStore struct {
	client redis.UniversalClient
	prefix string
}

// NewOfferStore creates a new Redis-based offer decision store.
func NewOfferStore(client redis.UniversalClient) *OfferStore {
	return &OfferStore{
		client: client,
		prefix: "offer:",
	}
}

func (s *OfferStore) Save(ctx context.Context, sessionID string, status domainsession.OfferStatus) error {
	if sessionID == "" {
		return errors.New("session ID cannot be empty")
	}
	if !status.Valid() {
		return fmt.Errorf("invalid offer status %q", status)
	}

	return s.client.Set(ctx, s.prefix+sessionID, string(status), 0).Err()
}

// Get returns the stored decision, or OfferPending when none was saved.
func (s *OfferStore) Get(ctx context.Context, sessionID string) (domainsession.OfferStatus, error) {
	if sessionID == "" {
		return domainsession.OfferPending, nil
	}

	data, err := s.client.Get(ctx, s.prefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainsession.OfferPending, nil
		}
		return domainsession.OfferPending, fmt.Errorf("redis get: %w", err)
	}

	status := domainsession.OfferStatus(data)
	if !status.Valid() {
		return domainsession.OfferPending, nil
	}
	return status, nil
}

func (s *OfferStore) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.client.Del(ctx, s.prefix+sessionID).Err()
}
