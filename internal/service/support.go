package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kylianerp/onboarding-portal/internal/ports"
)

// SupportServiceOptions groups dependencies for SupportService.
type SupportServiceOptions struct {
	Mailer ports.MailSender
	Logger *slog.Logger
}

// SupportService validates and delivers support contact-form submissions.
type SupportService struct {
	mailer ports.MailSender
	log    *slog.Logger
}

// NewSupportService constructs a new SupportService.
func NewSupportService(opts SupportServiceOptions) *SupportService {
	return &SupportService{
		mailer: opts.Mailer,
		log:    opts.Logger,
	}
}

func (s *SupportService) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return slog.Default()
}

// ErrSupportFieldsRequired is returned when a submission is missing a
// required field.
const ErrSupportFieldsRequired = displayErr("Please fill in all required fields")

// ErrSupportDeliveryFailed is returned when the ticket could not be
// delivered.
const ErrSupportDeliveryFailed = displayErr("Failed to send your message. Please try again later.")

// Submit validates and delivers a support ticket.
func (s *SupportService) Submit(ctx context.Context, ticket ports.SupportTicket) error {
	ticket.Name = strings.TrimSpace(ticket.Name)
	ticket.Email = strings.TrimSpace(ticket.Email)
	ticket.Category = strings.TrimSpace(ticket.Category)
	ticket.Subject = strings.TrimSpace(ticket.Subject)
	ticket.Message = strings.TrimSpace(ticket.Message)

	if ticket.Name == "" || ticket.Email == "" || ticket.Message == "" {
		return ErrSupportFieldsRequired
	}
	if ticket.Category == "" {
		ticket.Category = "general"
	}

	if err := s.mailer.Send(ctx, ticket); err != nil {
		s.logger().Error("deliver support ticket", "error", fmt.Errorf("send: %w", err))
		return ErrSupportDeliveryFailed
	}

	s.logger().Info("support ticket delivered", "subject", ticket.Subject)
	return nil
}
