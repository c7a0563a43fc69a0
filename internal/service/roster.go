package service

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/kylianerp/onboarding-portal/internal/domain/employee"
	"github.com/kylianerp/onboarding-portal/internal/ports"
)

// RosterServiceOptions groups dependencies for RosterService.
type RosterServiceOptions struct {
	API   ports.CandidateAPI
	Cache ports.RosterStore

	// DefaultEmployeeID fills the roster id parameter when the session
	// user has no resolvable employee id. The endpoint rejects requests
	// without one.
	DefaultEmployeeID int

	// DefaultCompanyID fills the company id when the session user has none.
	DefaultCompanyID int

	Logger *slog.Logger
}

// RosterService fetches the team roster from the ERP API and caches it per
// client. Concurrent refreshes for the same client are serialized by a
// request generation so the cache always holds the most recently issued
// fetch, not whichever response happened to arrive last.
type RosterService struct {
	api             ports.CandidateAPI
	cache           ports.RosterStore
	defaultEmployee int
	defaultCompany  int
	log             *slog.Logger

	mu          sync.Mutex
	generations map[string]uint64
}

// NewRosterService constructs a new RosterService.
func NewRosterService(opts RosterServiceOptions) *RosterService {
	return &RosterService{
		api:             opts.API,
		cache:           opts.Cache,
		defaultEmployee: opts.DefaultEmployeeID,
		defaultCompany:  opts.DefaultCompanyID,
		log:             opts.Logger,
		generations:     make(map[string]uint64),
	}
}

func (s *RosterService) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return slog.Default()
}

// Refresh fetches the roster for the session user and caches it under the
// client id. On failure the cache keeps its previous value.
func (s *RosterService) Refresh(ctx context.Context, clientID string, user *employee.Employee) ([]employee.Employee, error) {
	q := s.query(user)
	gen := s.nextGeneration(clientID)

	roster, err := s.api.FetchRoster(ctx, q)
	if err != nil {
		return nil, err
	}

	if !s.isCurrentGeneration(clientID, gen) {
		// A newer refresh was issued while this one was in flight; its
		// result owns the cache.
		s.logger().Debug("discarding stale roster response", "client_id", clientID)
		return roster, nil
	}

	if clientID != "" {
		if saveErr := s.cache.Save(ctx, clientID, roster); saveErr != nil {
			s.logger().Warn("cache roster", "client_id", clientID, "error", saveErr)
		}
	}
	return roster, nil
}

// Cached returns the last cached roster for the client, or an empty slice
// when nothing was cached yet.
func (s *RosterService) Cached(ctx context.Context, clientID string) []employee.Employee {
	if clientID == "" {
		return []employee.Employee{}
	}
	roster, err := s.cache.Get(ctx, clientID)
	if err != nil {
		return []employee.Employee{}
	}
	return roster
}

func (s *RosterService) query(user *employee.Employee) ports.RosterQuery {
	companyID := user.Company()
	if companyID == 0 {
		companyID = s.defaultCompany
	}

	employeeID := ""
	if user != nil && user.ID > 0 {
		employeeID = strconv.FormatInt(int64(user.ID), 10)
	}
	if employeeID == "" {
		employeeID = strconv.Itoa(s.defaultEmployee)
	}

	return ports.RosterQuery{CompanyID: companyID, EmployeeID: employeeID}
}

func (s *RosterService) nextGeneration(clientID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[clientID]++
	return s.generations[clientID]
}

func (s *RosterService) isCurrentGeneration(clientID string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[clientID] == gen
}
