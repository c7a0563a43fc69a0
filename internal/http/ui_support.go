package httpx

import (
	"net/http"

	"github.com/kylianerp/onboarding-portal/internal/adapters/erp"
	"github.com/kylianerp/onboarding-portal/internal/ports"
)

// supportForm carries the submitted contact-form values back into the
// template when the submission fails.
type supportForm struct {
	Name     string
	Email    string
	Category string
	Subject  string
	Message  string
}

// SupportPage serves the support contact form, prefilled with the session
// user's name and email.
func (h *UIHandlers) SupportPage(w http.ResponseWriter, r *http.Request) {
	form := supportForm{}
	if sess := GetSessionFromContext(r.Context()); sess != nil && sess.User != nil {
		form.Name = sess.User.DisplayName()
		form.Email = sess.User.ContactEmail()
	}
	h.renderSupport(w, r, form, "", false)
}

// SubmitSupport validates and delivers the contact form.
func (h *UIHandlers) SubmitSupport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	form := supportForm{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Category: r.PostFormValue("category"),
		Subject:  r.PostFormValue("subject"),
		Message:  r.PostFormValue("message"),
	}

	err := h.Support.Submit(r.Context(), ports.SupportTicket{
		Name:     form.Name,
		Email:    form.Email,
		Category: form.Category,
		Subject:  form.Subject,
		Message:  form.Message,
	})
	if err != nil {
		h.renderSupport(w, r, form, erp.UserMessage(err), false)
		return
	}

	h.renderSupport(w, r, supportForm{Name: form.Name, Email: form.Email}, "", true)
}

func (h *UIHandlers) renderSupport(w http.ResponseWriter, r *http.Request, form supportForm, errMsg string, sent bool) {
	data := h.basePageData(r, PageMeta{Title: "Support - Onboarding Portal", CurrentPage: PageSupport})
	data["Error"] = errMsg
	data["Sent"] = sent
	data["Form"] = form

	status := http.StatusOK
	if errMsg != "" {
		status = http.StatusUnprocessableEntity
	}
	h.renderPage(w, r, RenderParams{Status: status, Template: "support-page", Data: data})
}
