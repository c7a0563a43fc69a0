// Package profile derives presentation values from an employee record.
// Everything here is a pure function computed on render; nothing is stored.
package profile

import (
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/kylianerp/onboarding-portal/internal/domain/employee"
)

// avatarPalette is the fixed set of avatar background colors. The entry is
// picked by the code point of the first initial modulo the palette size, so
// a given user always gets the same color.
var avatarPalette = [7]string{
	"#3b82f6", // blue
	"#22c55e", // green
	"#ec4899", // pink
	"#6366f1", // indigo
	"#eab308", // yellow
	"#ef4444", // red
	"#14b8a6", // teal
}

// onboardingFieldCount is the number of profile fields tracked for the
// completion percentage.
const onboardingFieldCount = 8

// FullName joins first, middle and last name with spaces, skipping blanks.
// Returns "User" when no name part is set.
func FullName(e *employee.Employee) string {
	if e == nil {
		return "User"
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{e.FirstName, e.MiddleName, e.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "User"
	}
	return strings.Join(parts, " ")
}

// GreetingName returns the casual address form: first name, else nickname,
// else "there".
func GreetingName(e *employee.Employee) string {
	if e == nil {
		return "there"
	}
	if e.FirstName != "" {
		return e.FirstName
	}
	if e.NickName != "" {
		return e.NickName
	}
	return "there"
}

// Initials returns the one or two letter avatar monogram, uppercased.
// "U" when neither name is set.
func Initials(e *employee.Employee) string {
	if e == nil {
		return "U"
	}
	first := firstLetter(e.FirstName)
	last := firstLetter(e.LastName)
	switch {
	case first != "" && last != "":
		return first + last
	case first != "":
		return first
	case last != "":
		return last
	}
	return "U"
}

func firstLetter(s string) string {
	for _, r := range s {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// AvatarColor returns the background color for the user's avatar, chosen
// deterministically from the palette by the first initial.
func AvatarColor(e *employee.Employee) string {
	return ColorForInitial(Initials(e))
}

// ColorForInitial maps an initial to its palette color. The empty string
// maps the same way as "U", matching Initials' fallback.
func ColorForInitial(initial string) string {
	if initial == "" {
		initial = "U"
	}
	r := []rune(initial)[0]
	return avatarPalette[int(r)%len(avatarPalette)]
}

// DisplayInitial returns the single avatar letter for a roster card, taken
// from the display name rather than the structured name fields, since the
// roster endpoint often sends only a flat name.
func DisplayInitial(e *employee.Employee) string {
	if e == nil {
		return "U"
	}
	if initial := firstLetter(e.DisplayName()); initial != "" {
		return initial
	}
	return "U"
}

// TitleLine joins designation, position, department and highest
// qualification with a bullet separator. Empty string when all are blank.
func TitleLine(e *employee.Employee) string {
	if e == nil {
		return ""
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{e.Designation, e.Position, e.Department, e.HighestQualification} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " • ")
}

// Role returns designation, else position, else "Employee".
func Role(e *employee.Employee) string {
	if e == nil {
		return "Employee"
	}
	if e.Designation != "" {
		return e.Designation
	}
	if e.Position != "" {
		return e.Position
	}
	return "Employee"
}

// Education returns the highest qualification or "Not specified".
func Education(e *employee.Employee) string {
	if e == nil || e.HighestQualification == "" {
		return "Not specified"
	}
	return e.HighestQualification
}

// OnboardingProgress returns the completion percentage over the eight
// tracked profile fields, rounded to the nearest integer. City and street
// address count as one field between them.
func OnboardingProgress(e *employee.Employee) int {
	if e == nil {
		return 0
	}
	completed := 0
	for _, present := range []bool{
		e.FirstName != "",
		e.LastName != "",
		e.Email != "",
		e.Phone1 != "",
		e.MaritalStatus != "",
		e.City != "" || e.Address != "",
		e.DateOfBirth != "",
		e.Sex != "",
	} {
		if present {
			completed++
		}
	}
	return int(math.Round(float64(completed) / onboardingFieldCount * 100))
}

// birthDateLayouts are the date formats the ERP API has been seen to use
// for employee_date_of_birth.
var birthDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
	"01/02/2006",
}

// BirthYear extracts the year from a birth date string. Empty string when
// the value is blank or unparseable.
func BirthYear(dateString string) string {
	s := strings.TrimSpace(dateString)
	if s == "" {
		return ""
	}
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006")
		}
	}
	return ""
}

// TimeGreeting returns the salutation for the given local time:
// morning before noon, afternoon before 17:00, evening after.
func TimeGreeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Good morning"
	case hour < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
