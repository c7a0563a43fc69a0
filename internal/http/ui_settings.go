package httpx

import (
	"net/http"

	"github.com/kylianerp/onboarding-portal/internal/ports"
)

// SettingsPage serves the per-browser preference form.
func (h *UIHandlers) SettingsPage(w http.ResponseWriter, r *http.Request) {
	h.renderSettings(w, r, false, "")
}

// SaveSettings persists the submitted preferences, keyed by the client
// cookie so they survive logout.
func (h *UIHandlers) SaveSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	clientID := GetClientIDFromContext(r.Context())
	prefs := ports.Preferences{
		DarkMode: r.PostFormValue("dark_mode") == "on",
	}
	if err := h.Prefs.Save(r.Context(), clientID, prefs); err != nil {
		h.logger().ErrorContext(r.Context(), "save preferences failed", "error", err)
		h.renderSettings(w, r, false, "Failed to save settings. Please try again.")
		return
	}

	h.renderSettings(w, r, true, "")
}

func (h *UIHandlers) renderSettings(w http.ResponseWriter, r *http.Request, saved bool, errMsg string) {
	data := h.basePageData(r, PageMeta{Title: "Settings - Onboarding Portal", CurrentPage: PageSettings})
	data["Saved"] = saved
	data["Error"] = errMsg

	status := http.StatusOK
	if errMsg != "" {
		status = http.StatusInternalServerError
	}
	h.renderPage(w, r, RenderParams{Status: status, Template: "settings-page", Data: data})
}
