package httpx

import (
	"net/http"

	"github.com/kylianerp/onboarding-portal/internal/adapters/erp"
	"github.com/kylianerp/onboarding-portal/internal/domain/profile"
	domainsession "github.com/kylianerp/onboarding-portal/internal/domain/session"
)

// JobOfferPage serves the offer letter with accept/reject actions.
func (h *UIHandlers) JobOfferPage(w http.ResponseWriter, r *http.Request) {
	h.renderJobOffer(w, r, "")
}

// AcceptOffer accepts the job offer on the remote system. On success the
// session is ended and the candidate returns to the login page, where a
// fresh login reflects the updated employee record.
func (h *UIHandlers) AcceptOffer(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	if err := h.Offers.Accept(r.Context(), *sess); err != nil {
		h.renderJobOffer(w, r, erp.UserMessage(err))
		return
	}

	if err := h.Auth.Logout(r.Context(), sess.ID); err != nil {
		h.logger().ErrorContext(r.Context(), "logout after offer accept failed", "error", err)
	}
	h.clearSessionCookie(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// RejectOffer records a local rejection and returns to the dashboard.
func (h *UIHandlers) RejectOffer(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	if err := h.Offers.Reject(r.Context(), sess.ID); err != nil {
		h.logger().ErrorContext(r.Context(), "reject offer failed", "error", err)
		h.renderJobOffer(w, r, erp.UserMessage(err))
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *UIHandlers) renderJobOffer(w http.ResponseWriter, r *http.Request, errMsg string) {
	sess := GetSessionFromContext(r.Context())
	user := sess.User
	status := h.Offers.Status(r.Context(), sess.ID)

	data := h.basePageData(r, PageMeta{Title: "Job Offer - Onboarding Portal", CurrentPage: PageJobOffer})
	data["Error"] = errMsg
	data["FullName"] = profile.FullName(user)
	data["Role"] = profile.Role(user)
	data["Status"] = string(status)
	data["IsPending"] = status == domainsession.OfferPending
	data["IsAccepted"] = status == domainsession.OfferAccepted
	data["IsRejected"] = status == domainsession.OfferRejected

	data["OfferLetterURL"] = ""
	if user != nil {
		letter := user.OfferLetterURL
		if letter == "" {
			letter = user.OfferLetter
		}
		if letter != "" && h.Files != nil {
			data["OfferLetterURL"] = h.Files.FileURL(letter)
		}
	}

	renderStatus := http.StatusOK
	if errMsg != "" {
		renderStatus = http.StatusUnprocessableEntity
	}
	h.renderPage(w, r, RenderParams{Status: renderStatus, Template: "job-offer-page", Data: data})
}
