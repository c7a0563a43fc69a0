package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFound_RendersErrorPage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/no-such-page", reqOptions{})

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "404")
	assert.Contains(t, body, "doesn't exist")
	assert.Contains(t, body, "Go to sign in")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestNotFound_AuthenticatedSeesDashboardLink(t *testing.T) {
	env := newTestEnv(t)
	sessionID := env.loginAs(t, env.API.DefaultUser)

	rec := env.do(t, http.MethodGet, "/no-such-page", reqOptions{SessionID: sessionID})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Back to dashboard")
}

func TestNotFound_JSONForNonBrowserClients(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	env.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestNotFound_MatchedRoutesUnaffected(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/", reqOptions{})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "404")
}

func TestStatic_ServesStylesheet(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/static/css/portal.css", reqOptions{})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age")
	assert.Contains(t, rec.Body.String(), "body.dark")
}

func TestStatic_MissingAssetKeepsPlainNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/static/css/nope.css", reqOptions{})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "error-page")
	assert.NotContains(t, rec.Body.String(), "doesn't exist")
}
