package httpx

import (
	"errors"
	"net/http"
)

// NotFound handles 404s. Browser requests get the HTML error page; anything
// else gets a JSON error response.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if !IsBrowserRequest(r) {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "not_found",
			Err:     errors.New("not found"),
		})
		return
	}

	data := h.basePageData(r, PageMeta{Title: "Page Not Found - Onboarding Portal"})
	data["Code"] = "404"
	data["Message"] = "The page you're looking for doesn't exist."

	if err := h.T.Render(w, RenderParams{Status: http.StatusNotFound, Template: "error-page", Data: data}); err != nil {
		h.logger().ErrorContext(r.Context(), "render not-found page failed", "error", err)
		http.Error(w, "Page not found", http.StatusNotFound)
	}
}
