package service

import (
	"context"
	"fmt"
	"log/slog"

	domainsession "github.com/kylianerp/onboarding-portal/internal/domain/session"
	"github.com/kylianerp/onboarding-portal/internal/ports"
)

// OfferServiceOptions groups dependencies for OfferService.
type OfferServiceOptions struct {
	API    ports.CandidateAPI
	Offers ports.OfferStore
	Logger *slog.Logger
}

// OfferService runs the job-offer acceptance workflow. Accept is backed by
// a remote call; reject is a local decision only, since the ERP API has no
// reject endpoint.
type OfferService struct {
	api    ports.CandidateAPI
	offers ports.OfferStore
	log    *slog.Logger
}

// NewOfferService constructs a new OfferService.
func NewOfferService(opts OfferServiceOptions) *OfferService {
	return &OfferService{
		api:    opts.API,
		offers: opts.Offers,
		log:    opts.Logger,
	}
}

func (s *OfferService) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return slog.Default()
}

// Accept derives the offer identifiers from the session user record and
// accepts the offer on the remote system. All three of tracking number,
// contact email, and company id must resolve or the call fails locally
// without touching the network.
func (s *OfferService) Accept(ctx context.Context, sess domainsession.Session) error {
	user := sess.User
	trackingNumber := user.ResolveTrackingNumber()
	email := user.ContactEmail()
	companyID := user.Company()

	if trackingNumber == "" || email == "" || companyID == 0 {
		return ErrMissingOfferInfo
	}

	if _, err := s.api.AcceptOffer(ctx, ports.AcceptOfferInput{
		TrackingNumber: trackingNumber,
		Email:          email,
		CompanyID:      companyID,
		Token:          sess.Token,
	}); err != nil {
		return err
	}

	if err := s.offers.Save(ctx, sess.ID, domainsession.OfferAccepted); err != nil {
		return fmt.Errorf("save offer status: %w", err)
	}

	s.logger().Info("job offer accepted", "session_id", sess.ID)
	return nil
}

// Reject records a local rejection. No remote call backs this transition.
func (s *OfferService) Reject(ctx context.Context, sessionID string) error {
	if err := s.offers.Save(ctx, sessionID, domainsession.OfferRejected); err != nil {
		return fmt.Errorf("save offer status: %w", err)
	}

	s.logger().Info("job offer rejected", "session_id", sessionID)
	return nil
}

// Status returns the recorded decision for the session, defaulting to
// pending.
func (s *OfferService) Status(ctx context.Context, sessionID string) domainsession.OfferStatus {
	status, err := s.offers.Get(ctx, sessionID)
	if err != nil {
		s.logger().Warn("get offer status", "session_id", sessionID, "error", err)
		return domainsession.OfferPending
	}
	return status
}
