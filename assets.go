// Package portal provides embedded assets for production builds.
package portal

import "embed"

// TemplateFS holds the HTML templates served in production builds.
// In dev mode (IsDev=true), templates are loaded from disk instead so
// edits show up without a rebuild.
//
//go:embed all:frontend/templates
var TemplateFS embed.FS

// StaticFS holds the stylesheets and other static assets served under
// /static/ in production builds. Dev mode serves them from disk.
//
//go:embed all:frontend/static
var StaticFS embed.FS
