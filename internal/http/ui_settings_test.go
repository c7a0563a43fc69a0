package httpx

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylianerp/onboarding-portal/internal/ports"
)

func TestSettingsPage_DefaultsLight(t *testing.T) {
	env := newTestEnv(t)
	sessionID := env.loginAs(t, env.API.DefaultUser)

	rec := env.do(t, http.MethodGet, "/settings", reqOptions{SessionID: sessionID})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Dark mode")
	assert.NotContains(t, body, `class="dark"`)
}

func TestSaveSettings_PersistsDarkMode(t *testing.T) {
	env := newTestEnv(t)
	sessionID := env.loginAs(t, env.API.DefaultUser)

	rec := env.do(t, http.MethodPost, "/settings", reqOptions{
		SessionID: sessionID,
		Form:      url.Values{"dark_mode": {"on"}},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Settings saved.")
	assert.Contains(t, body, `class="dark"`)

	prefs, err := env.Prefs.Get(context.Background(), testClientID)
	require.NoError(t, err)
	assert.True(t, prefs.DarkMode)
}

func TestSaveSettings_TurnsDarkModeOff(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.Prefs.Save(context.Background(), testClientID, ports.Preferences{DarkMode: true}))
	sessionID := env.loginAs(t, env.API.DefaultUser)

	rec := env.do(t, http.MethodPost, "/settings", reqOptions{
		SessionID: sessionID,
		Form:      url.Values{},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	prefs, err := env.Prefs.Get(context.Background(), testClientID)
	require.NoError(t, err)
	assert.False(t, prefs.DarkMode)
}

func TestDarkModePreference_AppliesAcrossPages(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.Prefs.Save(context.Background(), testClientID, ports.Preferences{DarkMode: true}))
	sessionID := env.loginAs(t, env.API.DefaultUser)

	rec := env.do(t, http.MethodGet, "/dashboard", reqOptions{SessionID: sessionID})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `class="dark"`)
}
