package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"

	domainsession "github.com/kylianerp/onboarding-portal/internal/domain/session"
)

const (
	// SessionCookieName carries the opaque session id.
	SessionCookieName = "session_id"

	// ClientCookieName carries the stable per-browser client id. It outlives
	// the session so cached rosters and preferences survive logout.
	ClientCookieName = "portal_client"

	// clientCookieMaxAge keeps the client id around for about a year.
	clientCookieMaxAge = 365 * 24 * 3600
)

// SessionReader resolves a session id from the cookie to a live session.
type SessionReader interface {
	GetSession(ctx context.Context, sessionID string) (domainsession.Session, error)
}

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// ClientID returns a middleware that tags every browser with a stable
// client id cookie and exposes it on the request context.
func ClientID(cookieDomain string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID := ""
			if cookie, err := r.Cookie(ClientCookieName); err == nil {
				clientID = cookie.Value
			}
			if clientID == "" {
				clientID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     ClientCookieName,
					Value:    clientID,
					Path:     "/",
					Domain:   cookieDomain,
					HttpOnly: true,
					Secure:   isSecureRequest(r),
					SameSite: http.SameSiteLaxMode,
					MaxAge:   clientCookieMaxAge,
				})
			}

			ctx := SetClientIDInContext(r.Context(), clientID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoadSession returns a middleware that resolves the session cookie and, when
// it maps to a live session, attaches the session to the request context.
// Unauthenticated requests pass through untouched.
func LoadSession(auth SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sess := sessionFromRequest(r, auth); sess != nil {
				r = r.WithContext(SetSessionInContext(r.Context(), sess))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuthBrowser returns a middleware that requires an authenticated
// session. Browser requests are redirected to the login page; everything
// else gets a 401 JSON response.
func RequireAuthBrowser() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := GetSessionFromContext(r.Context())
			if sess == nil || !sess.IsAuthenticated {
				if IsBrowserRequest(r) {
					http.Redirect(w, r, "/", http.StatusSeeOther)
					return
				}
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "authentication_required",
					Err:     errors.New("authentication required"),
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// sessionFromRequest resolves the session cookie against the session reader.
func sessionFromRequest(r *http.Request, auth SessionReader) *domainsession.Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	sess, err := auth.GetSession(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return &sess
}

// IsBrowserRequest reports whether the request came from a browser
// navigation rather than a programmatic client. Browsers send an Accept
// header preferring text/html; an absent header is treated as a browser for
// non-static paths.
func IsBrowserRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/static/") {
		return false
	}
	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "*/*")
}

// isSecureRequest reports whether the request arrived over HTTPS, directly
// or via a forwarding proxy.
func isSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	for _, proto := range strings.Split(r.Header.Get("X-Forwarded-Proto"), ",") {
		if strings.EqualFold(strings.TrimSpace(proto), "https") {
			return true
		}
	}
	return false
}
