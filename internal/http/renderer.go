package httpx

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
)

// templatePatterns are the glob patterns parsed into the template tree,
// relative to the template FS root.
var templatePatterns = []string{"*.tmpl", "pages/*.tmpl", "partials/*.tmpl"}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	// TemplateFS is the filesystem holding the template tree. In production
	// this is the embedded copy.
	TemplateFS fs.FS

	// DevMode reparses templates from DevTemplateDir on every render so
	// template edits show up without a rebuild.
	DevMode bool

	// DevTemplateDir is the on-disk template directory used in dev mode.
	DevTemplateDir string

	Logger *slog.Logger
}

// TemplateRenderer renders HTML pages from a parsed template tree. Every
// page is a named template ("login-page", "dashboard-page", ...) sharing the
// partials in partials/.
type TemplateRenderer struct {
	cfg TemplateRendererConfig
	t   *template.Template
}

// NewTemplateRenderer parses the template tree and returns a renderer.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	t, err := parseTemplates(cfg.TemplateFS)
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{cfg: cfg, t: t}, nil
}

func parseTemplates(fsys fs.FS) (*template.Template, error) {
	t, err := template.ParseFS(fsys, templatePatterns...)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

func (tr *TemplateRenderer) logger() *slog.Logger {
	if tr.cfg.Logger != nil {
		return tr.cfg.Logger
	}
	return slog.Default()
}

// templates returns the template tree, reparsing from disk in dev mode.
func (tr *TemplateRenderer) templates() (*template.Template, error) {
	if !tr.cfg.DevMode || tr.cfg.DevTemplateDir == "" {
		return tr.t, nil
	}
	t, err := parseTemplates(os.DirFS(tr.cfg.DevTemplateDir))
	if err != nil {
		tr.logger().Error("dev template reload failed", "error", err)
		return tr.t, nil
	}
	return t, nil
}

// RenderParams groups parameters for Render.
type RenderParams struct {
	Status   int
	Template string
	Data     any
}

// Render executes the named page template into a buffer and writes it with
// the given status. Buffering keeps a template failure from producing a
// half-written page.
func (tr *TemplateRenderer) Render(w http.ResponseWriter, p RenderParams) error {
	t, err := tr.templates()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if execErr := t.ExecuteTemplate(&buf, p.Template, p.Data); execErr != nil {
		return fmt.Errorf("render %s: %w", p.Template, execErr)
	}

	status := p.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, writeErr := buf.WriteTo(w); writeErr != nil {
		return fmt.Errorf("write %s: %w", p.Template, writeErr)
	}
	return nil
}
