package httpx

import (
	"net/http"

	"github.com/kylianerp/onboarding-portal/internal/adapters/erp"
	"github.com/kylianerp/onboarding-portal/internal/domain/employee"
	"github.com/kylianerp/onboarding-portal/internal/domain/profile"
)

// rosterCard is the view model for one roster entry.
type rosterCard struct {
	Name        string
	Title       string
	Initial     string
	AvatarColor string
}

// TeamsPage serves the team roster. The cached roster is shown when one
// exists; otherwise a fresh fetch is attempted inline.
func (h *UIHandlers) TeamsPage(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	clientID := GetClientIDFromContext(r.Context())

	roster := h.Roster.Cached(r.Context(), clientID)
	errMsg := ""
	if len(roster) == 0 {
		fresh, err := h.Roster.Refresh(r.Context(), clientID, sess.User)
		if err != nil {
			errMsg = erp.UserMessage(err)
		} else {
			roster = fresh
		}
	}

	h.renderTeams(w, r, roster, errMsg)
}

// RefreshTeams forces a roster refetch, bypassing the cache.
func (h *UIHandlers) RefreshTeams(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	clientID := GetClientIDFromContext(r.Context())

	roster, err := h.Roster.Refresh(r.Context(), clientID, sess.User)
	if err != nil {
		// Keep showing whatever was cached alongside the error.
		h.renderTeams(w, r, h.Roster.Cached(r.Context(), clientID), erp.UserMessage(err))
		return
	}
	h.renderTeams(w, r, roster, "")
}

func (h *UIHandlers) renderTeams(w http.ResponseWriter, r *http.Request, roster []employee.Employee, errMsg string) {
	cards := make([]rosterCard, 0, len(roster))
	for i := range roster {
		member := &roster[i]
		initial := profile.DisplayInitial(member)
		cards = append(cards, rosterCard{
			Name:        member.DisplayName(),
			Title:       member.RosterTitle(),
			Initial:     initial,
			AvatarColor: profile.ColorForInitial(initial),
		})
	}

	data := h.basePageData(r, PageMeta{Title: "Teams - Onboarding Portal", CurrentPage: PageTeams})
	data["Error"] = errMsg
	data["Members"] = cards
	data["MemberCount"] = len(cards)

	status := http.StatusOK
	if errMsg != "" {
		status = http.StatusBadGateway
	}
	h.renderPage(w, r, RenderParams{Status: status, Template: "teams-page", Data: data})
}
