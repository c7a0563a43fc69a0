package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	domainsession "github.com/kylianerp/onboarding-portal/internal/domain/session"
	"github.com/kylianerp/onboarding-portal/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	API      ports.CandidateAPI
	Sessions ports.SessionStore
	Offers   ports.OfferStore

	// SessionTTL is the absolute lifetime of a new session.
	SessionTTL time.Duration

	Logger *slog.Logger
}

// AuthService orchestrates tracking-number login, session lookup, and
// logout against the ERP API and the session store.
type AuthService struct {
	api        ports.CandidateAPI
	sessions   ports.SessionStore
	offers     ports.OfferStore
	sessionTTL time.Duration
	log        *slog.Logger
}

var errSessionExpired = errors.New("session expired")

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{
		api:        opts.API,
		sessions:   opts.Sessions,
		offers:     opts.Offers,
		sessionTTL: ttl,
		log:        opts.Logger,
	}
}

func (s *AuthService) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return slog.Default()
}

// LoginInput carries the submitted credentials.
type LoginInput struct {
	Email          string
	TrackingNumber string
}

// Login authenticates against the ERP API and persists a new session
// holding the returned user record.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (domainsession.Session, error) {
	email := strings.TrimSpace(in.Email)
	trackingNumber := strings.TrimSpace(in.TrackingNumber)
	if email == "" || trackingNumber == "" {
		return domainsession.Session{}, ErrMissingCredentials
	}

	res, err := s.api.Login(ctx, ports.LoginInput{
		Email:          email,
		TrackingNumber: trackingNumber,
	})
	if err != nil {
		return domainsession.Session{}, err
	}

	now := time.Now()
	sess := domainsession.Session{
		ID:              uuid.NewString(),
		User:            res.User,
		Token:           res.Token,
		IsAuthenticated: true,
		CreatedAt:       now,
		ExpiresAt:       now.Add(s.sessionTTL),
	}

	if saveErr := s.sessions.Save(ctx, sess); saveErr != nil {
		return domainsession.Session{}, fmt.Errorf("save session: %w", saveErr)
	}

	s.logger().Info("candidate logged in", "session_id", sess.ID)
	return sess, nil
}

// GetSession retrieves a session by ID. Expired sessions are removed and
// reported as missing.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (domainsession.Session, error) {
	if sessionID == "" {
		return domainsession.Session{}, errors.New("session ID is required")
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domainsession.Session{}, fmt.Errorf("get session: %w", err)
	}

	if sess.IsExpired(time.Now()) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return domainsession.Session{}, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return domainsession.Session{}, errSessionExpired
	}

	return sess, nil
}

// Logout purges the session record and its offer decision. The purge is an
// explicit delete, not an overwrite, so a stale authenticated snapshot
// cannot come back after logout. Offer cleanup is best effort.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	if s.offers != nil {
		if err := s.offers.Delete(ctx, sessionID); err != nil {
			s.logger().Warn("delete offer status on logout", "session_id", sessionID, "error", err)
		}
	}

	s.logger().Info("candidate logged out", "session_id", sessionID)
	return nil
}
