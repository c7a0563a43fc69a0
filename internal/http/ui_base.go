package httpx

import (
	"log/slog"
	"net/http"

	"github.com/kylianerp/onboarding-portal/internal/domain/profile"
	"github.com/kylianerp/onboarding-portal/internal/ports"
	"github.com/kylianerp/onboarding-portal/internal/service"
)

// Page identifiers used for nav highlighting.
const (
	PageLogin     = "login"
	PageDashboard = "dashboard"
	PageJobOffer  = "job-offer"
	PageTeams     = "teams"
	PageSettings  = "settings"
	PageSupport   = "support"
)

// FileResolver resolves host-relative document paths (offer letters) to
// absolute URLs.
type FileResolver interface {
	FileURL(path string) string
}

// UIHandlers holds dependencies for the server-rendered portal pages.
type UIHandlers struct {
	Auth    *service.AuthService
	Roster  *service.RosterService
	Offers  *service.OfferService
	Support *service.SupportService
	Prefs   ports.PreferenceStore
	Files   FileResolver

	// CookieDomain scopes the session cookie; empty means host-only.
	CookieDomain string

	T   *TemplateRenderer
	Log *slog.Logger
}

func (h *UIHandlers) logger() *slog.Logger {
	if h.Log != nil {
		return h.Log
	}
	return slog.Default()
}

// PageMeta describes the page being rendered.
type PageMeta struct {
	Title       string
	CurrentPage string
}

// basePageData assembles the data every page template expects: titles, nav
// state, the CSRF token, the viewer's identity summary, and the dark mode
// preference.
func (h *UIHandlers) basePageData(r *http.Request, meta PageMeta) map[string]any {
	data := map[string]any{
		"Title":           meta.Title,
		"CurrentPage":     meta.CurrentPage,
		"CSRFToken":       GetCSRFToken(r),
		"IsAuthenticated": false,
		"DarkMode":        false,
	}

	if sess := GetSessionFromContext(r.Context()); sess != nil {
		data["IsAuthenticated"] = sess.IsAuthenticated
		data["UserName"] = profile.FullName(sess.User)
		data["UserInitials"] = profile.Initials(sess.User)
		data["UserAvatarColor"] = profile.AvatarColor(sess.User)
	}

	if h.Prefs != nil {
		if clientID := GetClientIDFromContext(r.Context()); clientID != "" {
			if prefs, err := h.Prefs.Get(r.Context(), clientID); err == nil {
				data["DarkMode"] = prefs.DarkMode
			}
		}
	}

	return data
}

// renderPage renders a page template and reports failures as a plain 500.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, p RenderParams) {
	if err := h.T.Render(w, p); err != nil {
		h.logger().ErrorContext(r.Context(), "render page failed", "template", p.Template, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
