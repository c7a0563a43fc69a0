package portal

// Package portal contains simple hand-written test doubles for the portal
// ports. These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"

	"github.com/kylianerp/onboarding-portal/internal/domain/employee"
	domainsession "github.com/kylianerp/onboarding-portal/internal/domain/session"
	"github.com/kylianerp/onboarding-portal/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.SessionStore    = (*MemorySessionStore)(nil)
	_ ports.RosterStore     = (*MemoryRosterStore)(nil)
	_ ports.PreferenceStore = (*MemoryPreferenceStore)(nil)
	_ ports.OfferStore      = (*MemoryOfferStore)(nil)
	_ ports.CandidateAPI    = (*StubCandidateAPI)(nil)
	_ ports.MailSender      = (*CaptureMailSender)(nil)
)

// ErrNotFound is a sentinel error for "not found" cases in mocks.
var ErrNotFound = errors.New("not found")

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainsession.Session

	// SaveErr, when set, is returned by Save.
	SaveErr error
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainsession.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainsession.Session) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainsession.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return domainsession.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len returns the number of stored sessions.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// MemoryRosterStore is an in-memory roster cache for unit tests.
type MemoryRosterStore struct {
	mu      sync.Mutex
	rosters map[string][]employee.Employee

	SaveErr error
}

// NewMemoryRosterStore creates a new in-memory roster cache.
func NewMemoryRosterStore() *MemoryRosterStore {
	return &MemoryRosterStore{
		rosters: make(map[string][]employee.Employee),
	}
}

func (m *MemoryRosterStore) Save(_ context.Context, clientID string, roster []employee.Employee) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if clientID == "" {
		return errors.New("client ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rosters[clientID] = roster
	return nil
}

func (m *MemoryRosterStore) Get(_ context.Context, clientID string) ([]employee.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	roster, ok := m.rosters[clientID]
	if !ok {
		return nil, ErrNotFound
	}
	return roster, nil
}

func (m *MemoryRosterStore) Delete(_ context.Context, clientID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rosters, clientID)
	return nil
}

// MemoryPreferenceStore is an in-memory preference store for unit tests.
type MemoryPreferenceStore struct {
	mu    sync.Mutex
	prefs map[string]ports.Preferences
}

// NewMemoryPreferenceStore creates a new in-memory preference store.
func NewMemoryPreferenceStore() *MemoryPreferenceStore {
	return &MemoryPreferenceStore{
		prefs: make(map[string]ports.Preferences),
	}
}

func (m *MemoryPreferenceStore) Save(_ context.Context, clientID string, prefs ports.Preferences) error {
	if clientID == "" {
		return errors.New("client ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs[clientID] = prefs
	return nil
}

func (m *MemoryPreferenceStore) Get(_ context.Context, clientID string) (ports.Preferences, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefs[clientID], nil
}

// MemoryOfferStore is an in-memory offer decision store for unit tests.
type MemoryOfferStore struct {
	mu       sync.Mutex
	statuses map[string]domainsession.OfferStatus
}

// NewMemoryOfferStore creates a new in-memory offer decision store.
func NewMemoryOfferStore() *MemoryOfferStore {
	return &MemoryOfferStore{
		statuses: make(map[string]domainsession.OfferStatus),
	}
}

func (m *MemoryOfferStore) Save(_ context.Context, sessionID string, status domainsession.OfferStatus) error {
	if sessionID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses[sessionID] = status
	return nil
}

func (m *MemoryOfferStore) Get(_ context.Context, sessionID string) (domainsession.OfferStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	status, ok := m.statuses[sessionID]
	if !ok {
		return domainsession.OfferPending, nil
	}
	return status, nil
}

func (m *MemoryOfferStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.statuses, sessionID)
	return nil
}

// StubCandidateAPI simulates the ERP API for tests with per-operation
// overrides and call counters.
type StubCandidateAPI struct {
	LoginFunc       func(ctx context.Context, in ports.LoginInput) (ports.LoginResult, error)
	FetchRosterFunc func(ctx context.Context, q ports.RosterQuery) ([]employee.Employee, error)
	AcceptOfferFunc func(ctx context.Context, in ports.AcceptOfferInput) (*employee.Employee, error)

	// DefaultUser is returned by Login when LoginFunc is unset.
	DefaultUser *employee.Employee

	mu               sync.Mutex
	loginCalls       int
	fetchRosterCalls int
	acceptOfferCalls int
}

// NewStubCandidateAPI creates a StubCandidateAPI with a sensible default user.
func NewStubCandidateAPI() *StubCandidateAPI {
	return &StubCandidateAPI{
		DefaultUser: &employee.Employee{
			ID:             911115,
			CompanyID:      59,
			TrackingNumber: "TRK-911115",
			FirstName:      "Mock",
			LastName:       "Candidate",
			Email:          "mock.candidate@example.com",
		},
	}
}

func (s *StubCandidateAPI) Login(ctx context.Context, in ports.LoginInput) (ports.LoginResult, error) {
	s.mu.Lock()
	s.loginCalls++
	s.mu.Unlock()

	if s.LoginFunc != nil {
		return s.LoginFunc(ctx, in)
	}
	return ports.LoginResult{User: s.DefaultUser, Token: "mock-token"}, nil
}

func (s *StubCandidateAPI) FetchRoster(ctx context.Context, q ports.RosterQuery) ([]employee.Employee, error) {
	s.mu.Lock()
	s.fetchRosterCalls++
	s.mu.Unlock()

	if s.FetchRosterFunc != nil {
		return s.FetchRosterFunc(ctx, q)
	}
	return []employee.Employee{}, nil
}

func (s *StubCandidateAPI) AcceptOffer(ctx context.Context, in ports.AcceptOfferInput) (*employee.Employee, error) {
	s.mu.Lock()
	s.acceptOfferCalls++
	s.mu.Unlock()

	if s.AcceptOfferFunc != nil {
		return s.AcceptOfferFunc(ctx, in)
	}
	return s.DefaultUser, nil
}

// LoginCalls returns the number of Login invocations.
func (s *StubCandidateAPI) LoginCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginCalls
}

// FetchRosterCalls returns the number of FetchRoster invocations.
func (s *StubCandidateAPI) FetchRosterCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchRosterCalls
}

// AcceptOfferCalls returns the number of AcceptOffer invocations.
func (s *StubCandidateAPI) AcceptOfferCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acceptOfferCalls
}

// CaptureMailSender records sent tickets for assertions.
type CaptureMailSender struct {
	mu      sync.Mutex
	tickets []ports.SupportTicket

	// Err, when set, is returned by Send.
	Err error
}

func (c *CaptureMailSender) Send(_ context.Context, ticket ports.SupportTicket) error {
	if c.Err != nil {
		return c.Err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tickets = append(c.tickets, ticket)
	return nil
}

// Tickets returns a copy of the captured tickets.
func (c *CaptureMailSender) Tickets() []ports.SupportTicket {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ports.SupportTicket, len(c.tickets))
	copy(out, c.tickets)
	return out
}
