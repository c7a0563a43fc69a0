package httpx

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportPage_PrefillsFromSession(t *testing.T) {
	env := newTestEnv(t)
	sessionID := env.loginAs(t, env.API.DefaultUser)

	rec := env.do(t, http.MethodGet, "/support", reqOptions{SessionID: sessionID})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Mock Candidate")
	assert.Contains(t, body, "mock.candidate@example.com")
}

func TestSubmitSupport_DeliversTicket(t *testing.T) {
	env := newTestEnv(t)
	sessionID := env.loginAs(t, env.API.DefaultUser)

	rec := env.do(t, http.MethodPost, "/support", reqOptions{
		SessionID: sessionID,
		Form: url.Values{
			"name":     {"Ada Lovelace"},
			"email":    {"ada@example.com"},
			"category": {"technical"},
			"subject":  {"Offer question"},
			"message":  {"When does my offer expire?"},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Support request submitted successfully!")

	tickets := env.Mail.Tickets()
	require.Len(t, tickets, 1)
	assert.Equal(t, "Ada Lovelace", tickets[0].Name)
	assert.Equal(t, "technical", tickets[0].Category)
	assert.Equal(t, "Offer question", tickets[0].Subject)
}

func TestSubmitSupport_MissingFields(t *testing.T) {
	env := newTestEnv(t)
	sessionID := env.loginAs(t, env.API.DefaultUser)

	rec := env.do(t, http.MethodPost, "/support", reqOptions{
		SessionID: sessionID,
		Form: url.Values{
			"name": {"Ada Lovelace"},
		},
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Please fill in all required fields")
	// The submitted value survives the round trip.
	assert.Contains(t, body, "Ada Lovelace")
	assert.Empty(t, env.Mail.Tickets())
}

func TestSubmitSupport_DeliveryFailure(t *testing.T) {
	env := newTestEnv(t)
	env.Mail.Err = errors.New("relay refused")
	sessionID := env.loginAs(t, env.API.DefaultUser)

	rec := env.do(t, http.MethodPost, "/support", reqOptions{
		SessionID: sessionID,
		Form: url.Values{
			"name":    {"Ada"},
			"email":   {"a@b.c"},
			"message": {"help"},
		},
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to send your message.")
}
