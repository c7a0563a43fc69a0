package ports

// Package ports defines interfaces (hexagonal ports) for the portal.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	"github.com/kylianerp/onboarding-portal/internal/domain/employee"
	domainsession "github.com/kylianerp/onboarding-portal/internal/domain/session"
)

// SessionStore persists and retrieves candidate sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainsession.Session) error
	Get(ctx context.Context, id string) (domainsession.Session, error)
	Delete(ctx context.Context, id string) error
}

// RosterStore caches the team roster per client, keyed by the stable client
// identifier so the cache survives logout.
type RosterStore interface {
	Save(ctx context.Context, clientID string, roster []employee.Employee) error
	Get(ctx context.Context, clientID string) ([]employee.Employee, error)
	Delete(ctx context.Context, clientID string) error
}

// PreferenceStore persists per-client UI preferences outside the session
// record so they survive logout.
type PreferenceStore interface {
	Save(ctx context.Context, clientID string, prefs Preferences) error
	Get(ctx context.Context, clientID string) (Preferences, error)
}

// Preferences are the per-client UI settings.
type Preferences struct {
	DarkMode bool `json:"dark_mode"`
}

// OfferStore persists the local job-offer decision for a session.
type OfferStore interface {
	Save(ctx context.Context, sessionID string, status domainsession.OfferStatus) error
	Get(ctx context.Context, sessionID string) (domainsession.OfferStatus, error)
	Delete(ctx context.Context, sessionID string) error
}
