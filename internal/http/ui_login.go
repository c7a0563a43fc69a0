package httpx

import (
	"net/http"
	"time"

	"github.com/kylianerp/onboarding-portal/internal/adapters/erp"
	domainsession "github.com/kylianerp/onboarding-portal/internal/domain/session"
	"github.com/kylianerp/onboarding-portal/internal/service"
)

// LoginPage serves the login form. Authenticated visitors are sent straight
// to the dashboard.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if sess := GetSessionFromContext(r.Context()); sess != nil && sess.IsAuthenticated {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := h.basePageData(r, PageMeta{Title: "Sign in - Onboarding Portal", CurrentPage: PageLogin})
	data["Error"] = ""
	data["Email"] = ""
	data["TrackingNumber"] = ""
	h.renderPage(w, r, RenderParams{Template: "login-page", Data: data})
}

// LoginSubmit handles the login form post. Failures re-render the form with
// the error message and the submitted values so the user can correct them.
func (h *UIHandlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	trackingNumber := r.PostFormValue("tracking_number")

	sess, err := h.Auth.Login(r.Context(), service.LoginInput{
		Email:          email,
		TrackingNumber: trackingNumber,
	})
	if err != nil {
		data := h.basePageData(r, PageMeta{Title: "Sign in - Onboarding Portal", CurrentPage: PageLogin})
		data["Error"] = erp.UserMessage(err)
		data["Email"] = email
		data["TrackingNumber"] = trackingNumber
		h.renderPage(w, r, RenderParams{Status: http.StatusUnprocessableEntity, Template: "login-page", Data: data})
		return
	}

	h.setSessionCookie(w, r, sess)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout ends the session and returns to the login page. The roster cache
// and preferences are keyed by the client cookie, not the session, so they
// survive.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if logoutErr := h.Auth.Logout(r.Context(), cookie.Value); logoutErr != nil {
			h.logger().ErrorContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}
	h.clearSessionCookie(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *UIHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, sess domainsession.Session) {
	maxAge := 0
	if !sess.ExpiresAt.IsZero() {
		maxAge = int(time.Until(sess.ExpiresAt).Seconds())
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

func (h *UIHandlers) clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
