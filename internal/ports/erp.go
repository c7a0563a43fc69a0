package ports

import (
	"context"

	"github.com/kylianerp/onboarding-portal/internal/domain/employee"
)

// LoginInput carries the credentials for a tracking-number login.
type LoginInput struct {
	Email          string
	TrackingNumber string
}

// LoginResult is the authenticated employee record and its bearer token.
type LoginResult struct {
	User  *employee.Employee
	Token string
}

// RosterQuery identifies whose roster to fetch.
type RosterQuery struct {
	EmployeeID string
	CompanyID  int
}

// AcceptOfferInput identifies the offer being accepted.
type AcceptOfferInput struct {
	TrackingNumber string
	Email          string
	CompanyID      int
	Token          string
}

// CandidateAPI is the remote ERP API that owns candidate records, rosters,
// and offer state.
type CandidateAPI interface {
	// Login authenticates by email and tracking number.
	Login(ctx context.Context, in LoginInput) (LoginResult, error)

	// FetchRoster returns the company roster visible to the given employee.
	FetchRoster(ctx context.Context, q RosterQuery) ([]employee.Employee, error)

	// AcceptOffer marks the job offer accepted on the remote system and
	// returns the refreshed employee record when the response carries one.
	AcceptOffer(ctx context.Context, in AcceptOfferInput) (*employee.Employee, error)
}

// SupportTicket is a message submitted through the support contact form.
type SupportTicket struct {
	Name     string
	Email    string
	Category string
	Subject  string
	Message  string
}

// MailSender delivers support tickets to the support inbox.
type MailSender interface {
	Send(ctx context.Context, ticket SupportTicket) error
}
