package httpx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/kylianerp/onboarding-portal/internal/domain/employee"
	domainsession "github.com/kylianerp/onboarding-portal/internal/domain/session"
	"github.com/kylianerp/onboarding-portal/internal/mocks/portal"
	"github.com/kylianerp/onboarding-portal/internal/service"
)

// On-disk asset directories relative to this package, used by handler tests.
const (
	TemplatePathFromTest = "../../frontend/templates"
	StaticPathFromTest   = "../../frontend/static"
)

const (
	testClientID  = "client-test"
	testCSRFToken = "csrf-test-token"
)

// RequireTemplateRenderer creates a TemplateRenderer for tests, skipping the
// test when the template tree is not on disk.
func RequireTemplateRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
	})
	if err != nil {
		t.Skipf("Templates not available, skipping: %v", err)
		return nil
	}
	return tr
}

// testEnv bundles a fully wired router over in-memory stores and a stub ERP
// API, plus handles on the doubles for assertions.
type testEnv struct {
	API      *portal.StubCandidateAPI
	Sessions *portal.MemorySessionStore
	Rosters  *portal.MemoryRosterStore
	Prefs    *portal.MemoryPreferenceStore
	Offers   *portal.MemoryOfferStore
	Mail     *portal.CaptureMailSender

	Handler http.Handler
}

// fileResolverFunc adapts a function to the FileResolver interface.
type fileResolverFunc func(string) string

func (f fileResolverFunc) FileURL(path string) string { return f(path) }

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	renderer := RequireTemplateRenderer(t)

	env := &testEnv{
		API:      portal.NewStubCandidateAPI(),
		Sessions: portal.NewMemorySessionStore(),
		Rosters:  portal.NewMemoryRosterStore(),
		Prefs:    portal.NewMemoryPreferenceStore(),
		Offers:   portal.NewMemoryOfferStore(),
		Mail:     &portal.CaptureMailSender{},
	}

	auth := service.NewAuthService(service.AuthServiceOptions{
		API:        env.API,
		Sessions:   env.Sessions,
		Offers:     env.Offers,
		SessionTTL: time.Hour,
	})
	roster := service.NewRosterService(service.RosterServiceOptions{
		API:               env.API,
		Cache:             env.Rosters,
		DefaultEmployeeID: 911115,
		DefaultCompanyID:  59,
	})
	offers := service.NewOfferService(service.OfferServiceOptions{
		API:    env.API,
		Offers: env.Offers,
	})
	support := service.NewSupportService(service.SupportServiceOptions{
		Mailer: env.Mail,
	})

	env.Handler = NewRouter(RouterServices{
		Auth:     auth,
		Roster:   roster,
		Offers:   offers,
		Support:  support,
		Prefs:    env.Prefs,
		Files:    fileResolverFunc(func(path string) string { return "https://files.example.com" + path }),
		Renderer: renderer,
		Static:   os.DirFS(StaticPathFromTest),
	})
	return env
}

// loginAs seeds an authenticated session for the given user and returns the
// session id for the cookie.
func (e *testEnv) loginAs(t *testing.T, user *employee.Employee) string {
	t.Helper()
	sess := domainsession.Session{
		ID:              "sess-test",
		User:            user,
		Token:           "tkn-test",
		IsAuthenticated: true,
		CreatedAt:       time.Now(),
		ExpiresAt:       time.Now().Add(time.Hour),
	}
	if err := e.Sessions.Save(context.Background(), sess); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return sess.ID
}

// reqOptions controls how a test request is built.
type reqOptions struct {
	SessionID string
	Form      url.Values
}

// do performs a request against the wired router with the portal's cookies
// attached: the client id, the CSRF pair on unsafe methods, and the session
// cookie when SessionID is set.
func (e *testEnv) do(t *testing.T, method, path string, opts reqOptions) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if opts.Form != nil {
		body = strings.NewReader(opts.Form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if opts.Form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	req.AddCookie(&http.Cookie{Name: ClientCookieName, Value: testClientID})
	if requiresCSRFValidation(method) {
		req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
		req.Header.Set(DefaultCSRFHeaderName, testCSRFToken)
	}
	if opts.SessionID != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: opts.SessionID})
	}

	rec := httptest.NewRecorder()
	e.Handler.ServeHTTP(rec, req)
	return rec
}
