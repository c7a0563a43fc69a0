package service

// displayErr is a validation error whose text is shown to the user as-is.
type displayErr string

func (e displayErr) Error() string { return string(e) }

// UserFacing marks the message as safe for direct display.
func (e displayErr) UserFacing() bool { return true }

// ErrMissingOfferInfo is returned when the session user record lacks a
// resolvable tracking number, contact email, or company id, so an offer
// acceptance cannot even be attempted.
const ErrMissingOfferInfo = displayErr("Missing required information to accept offer")

// ErrMissingCredentials is returned when a login is submitted with a blank
// email or tracking number. The browser form blocks this in the common
// case; the server repeats the check for direct posts.
const ErrMissingCredentials = displayErr("Please fill in all fields")
