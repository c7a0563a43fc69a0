package httpx

import (
	"net/http"
	"time"

	"github.com/kylianerp/onboarding-portal/internal/domain/profile"
)

// Dashboard serves the authenticated home page: greeting, onboarding
// progress, and the candidate's profile summary.
func (h *UIHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	user := sess.User

	data := h.basePageData(r, PageMeta{Title: "Dashboard - Onboarding Portal", CurrentPage: PageDashboard})
	data["Greeting"] = profile.TimeGreeting(time.Now())
	data["GreetingName"] = profile.GreetingName(user)
	data["FullName"] = profile.FullName(user)
	data["TitleLine"] = profile.TitleLine(user)
	data["Role"] = profile.Role(user)
	data["Education"] = profile.Education(user)
	data["Progress"] = profile.OnboardingProgress(user)
	data["Initials"] = profile.Initials(user)
	data["AvatarColor"] = profile.AvatarColor(user)
	data["OfferStatus"] = string(h.Offers.Status(r.Context(), sess.ID))

	data["Email"] = user.ContactEmail()
	data["Phone"] = ""
	data["Location"] = ""
	data["Department"] = ""
	data["MaritalStatus"] = ""
	data["BirthYear"] = ""
	data["TrackingNumber"] = user.ResolveTrackingNumber()
	if user != nil {
		data["Phone"] = user.Phone1
		data["Department"] = user.Department
		data["MaritalStatus"] = user.MaritalStatus
		data["BirthYear"] = profile.BirthYear(user.DateOfBirth)
		location := user.City
		if location == "" {
			location = user.Address
		}
		data["Location"] = location
	}

	h.renderPage(w, r, RenderParams{Template: "dashboard-page", Data: data})
}
