// Package httpx wires the portal's HTTP surface: routing, middleware, and
// the server-rendered page handlers.
package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/kylianerp/onboarding-portal/internal/ports"
	"github.com/kylianerp/onboarding-portal/internal/service"
)

// RouterServices holds everything NewRouter needs to build the portal.
type RouterServices struct {
	Auth    *service.AuthService
	Roster  *service.RosterService
	Offers  *service.OfferService
	Support *service.SupportService
	Prefs   ports.PreferenceStore
	Files   FileResolver

	Renderer *TemplateRenderer

	// Static serves /static/ assets when set. In dev mode assets are read
	// from DevStaticDir instead so stylesheet edits show up without a
	// rebuild.
	Static       fs.FS
	DevMode      bool
	DevStaticDir string

	// CookieDomain scopes the portal cookies; empty means host-only.
	CookieDomain string

	Logger *slog.Logger
}

func (s RouterServices) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// NewRouter builds the portal's HTTP handler with all routes and middleware
// attached.
func NewRouter(svcs RouterServices) http.Handler {
	ui := &UIHandlers{
		Auth:         svcs.Auth,
		Roster:       svcs.Roster,
		Offers:       svcs.Offers,
		Support:      svcs.Support,
		Prefs:        svcs.Prefs,
		Files:        svcs.Files,
		CookieDomain: svcs.CookieDomain,
		T:            svcs.Renderer,
		Log:          svcs.Logger,
	}

	mux := http.NewServeMux()
	registerRoutes(mux, ui)
	if svcs.Static != nil {
		mux.Handle("GET /static/", staticHandler(svcs.Static, svcs.DevMode, svcs.DevStaticDir))
	}

	var handler http.Handler = notFoundHandler(mux, ui)
	handler = LoadSession(svcs.Auth)(handler)
	handler = CSRFProtection(CSRFConfig{CookieDomain: svcs.CookieDomain})(handler)
	handler = ClientID(svcs.CookieDomain)(handler)
	handler = Logging(svcs.logger())(handler)
	handler = Recover(svcs.logger())(handler)
	return handler
}

func registerRoutes(mux *http.ServeMux, ui *UIHandlers) {
	authed := RequireAuthBrowser()

	mux.HandleFunc("GET /{$}", ui.LoginPage)
	mux.HandleFunc("POST /login", ui.LoginSubmit)
	mux.HandleFunc("POST /logout", ui.Logout)

	mux.Handle("GET /dashboard", authed(http.HandlerFunc(ui.Dashboard)))

	mux.Handle("GET /job-offer", authed(http.HandlerFunc(ui.JobOfferPage)))
	mux.Handle("POST /job-offer/accept", authed(http.HandlerFunc(ui.AcceptOffer)))
	mux.Handle("POST /job-offer/reject", authed(http.HandlerFunc(ui.RejectOffer)))

	mux.Handle("GET /teams", authed(http.HandlerFunc(ui.TeamsPage)))
	mux.Handle("POST /teams/refresh", authed(http.HandlerFunc(ui.RefreshTeams)))

	mux.Handle("GET /settings", authed(http.HandlerFunc(ui.SettingsPage)))
	mux.Handle("POST /settings", authed(http.HandlerFunc(ui.SaveSettings)))

	mux.Handle("GET /support", authed(http.HandlerFunc(ui.SupportPage)))
	mux.Handle("POST /support", authed(http.HandlerFunc(ui.SubmitSupport)))

	mux.HandleFunc("GET /healthz", HealthHandler)
}

// staticHandler serves /static/ assets. In dev mode (devMode=true) it reads
// from disk for hot reloading; otherwise it serves the embedded filesystem.
func staticHandler(static fs.FS, devMode bool, devDir string) http.Handler {
	var files http.FileSystem
	cacheControl := "public, max-age=3600"
	if devMode && devDir != "" {
		files = http.Dir(devDir)
		cacheControl = "no-cache, no-store, must-revalidate"
	} else {
		files = http.FS(static)
	}

	inner := http.StripPrefix("/static/", http.FileServer(files))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheControl)
		inner.ServeHTTP(w, r)
	})
}

// notFoundHandler intercepts the mux's default 404 so unmatched paths render
// the portal's error page instead of the stock text response.
func notFoundHandler(next http.Handler, ui *UIHandlers) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cw := &captureWriter{ResponseWriter: w}
		next.ServeHTTP(cw, r)

		if cw.status == http.StatusNotFound {
			// Missing static assets keep the file server's plain response.
			if strings.HasPrefix(r.URL.Path, "/static/") {
				cw.flush()
				return
			}
			ui.NotFound(w, r)
			return
		}
		cw.flush()
	})
}

// captureWriter buffers the response until flush so a 404 can be replaced
// wholesale.
type captureWriter struct {
	http.ResponseWriter
	status int
	body   []byte
}

func (w *captureWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}

func (w *captureWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	w.body = append(w.body, b...)
	return len(b), nil
}

func (w *captureWriter) flush() {
	status := w.status
	if status == 0 {
		status = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(status)
	if len(w.body) > 0 {
		_, _ = w.ResponseWriter.Write(w.body)
	}
}
