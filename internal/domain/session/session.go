package session

// Package session contains domain-level types for authenticated portal
// sessions. It is pure and free of framework/adapter concerns.

import (
	"time"

	"github.com/kylianerp/onboarding-portal/internal/domain/employee"
)

// Session is the server-side record persisted for an authenticated
// candidate. ID is an opaque identifier carried in the session cookie.
// User is the employee record exactly as the ERP API returned it at login;
// Token is the bearer token issued alongside it.
type Session struct {
	ID              string             `json:"id"`
	User            *employee.Employee `json:"user,omitempty"`
	Token           string             `json:"token,omitempty"`
	IsAuthenticated bool               `json:"is_authenticated"`
	CreatedAt       time.Time          `json:"created_at"`
	ExpiresAt       time.Time          `json:"expires_at"`
}

// IsExpired reports whether the session has passed its absolute expiry.
// A zero ExpiresAt never expires.
func (s Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// OfferStatus is the local job-offer decision state for a session.
type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
)

// Valid reports whether the status is one of the defined states.
func (o OfferStatus) Valid() bool {
	switch o {
	case OfferPending, OfferAccepted, OfferRejected:
		return true
	}
	return false
}
