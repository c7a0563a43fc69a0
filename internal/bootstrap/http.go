package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	portal "github.com/kylianerp/onboarding-portal"
	"github.com/kylianerp/onboarding-portal/config"
	httpx "github.com/kylianerp/onboarding-portal/internal/http"
)

// Asset directories inside the embedded FS, also used as the disk paths for
// dev-mode hot reloading.
const (
	embeddedTemplateRoot = "frontend/templates"
	embeddedStaticRoot   = "frontend/static"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// NewHTTPServer builds the portal's HTTP server with the full router and
// middleware stack attached. The server is not started; run it with
// RunServerWithShutdown.
func NewHTTPServer(cfg *HTTPServerConfig) (*http.Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appCfg := cfg.Config

	renderer, err := newTemplateRenderer(appCfg, logger)
	if err != nil {
		return nil, err
	}

	staticFS, err := fs.Sub(portal.StaticFS, embeddedStaticRoot)
	if err != nil {
		return nil, fmt.Errorf("embedded static assets: %w", err)
	}

	handler := httpx.NewRouter(httpx.RouterServices{
		Auth:         cfg.Services.Auth,
		Roster:       cfg.Services.Roster,
		Offers:       cfg.Services.Offers,
		Support:      cfg.Services.Support,
		Prefs:        cfg.Services.Prefs,
		Files:        cfg.Services.ERP,
		Renderer:     renderer,
		Static:       staticFS,
		DevMode:      appCfg.IsDev,
		DevStaticDir: embeddedStaticRoot,
		CookieDomain: appCfg.HTTP.CookieDomain,
		Logger:       logger,
	})

	return newServer(handler, appCfg.HTTP.Addr), nil
}

func newTemplateRenderer(cfg *config.AppConfig, logger *slog.Logger) (*httpx.TemplateRenderer, error) {
	templateFS, err := fs.Sub(portal.TemplateFS, embeddedTemplateRoot)
	if err != nil {
		return nil, fmt.Errorf("embedded templates: %w", err)
	}

	renderer, err := httpx.NewTemplateRenderer(httpx.TemplateRendererConfig{
		TemplateFS:     templateFS,
		DevMode:        cfg.IsDev,
		DevTemplateDir: embeddedTemplateRoot,
		Logger:         logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create template renderer: %w", err)
	}
	if cfg.IsDev {
		logger.Info("dev mode: templates reload from disk", "dir", embeddedTemplateRoot)
	}
	return renderer, nil
}

func newServer(handler http.Handler, addr string) *http.Server {
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}

	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// RunServerWithShutdown serves until SIGINT/SIGTERM or until the listener
// fails, then drains in-flight requests with a bounded shutdown.
func RunServerWithShutdown(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case sig := <-sigCh:
			logger.Info("received shutdown signal", "signal", sig.String())
		case <-gctx.Done():
			// Listener failed; fall through to shutdown for cleanup.
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("HTTP server stopped")
		return nil
	})

	return g.Wait()
}
