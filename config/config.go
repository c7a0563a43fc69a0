package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - http.go: HTTP server configuration
//   - redis.go: Redis (durable key-value store) configuration
//   - erp.go: Remote ERP API configuration
//   - support.go: Support mailbox configuration
type AppConfig struct {
	// IsDev controls development mode behavior (template hot reloading,
	// detailed template errors). Set DEV=true for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Redis configuration
	Redis RedisConfig `envPrefix:"REDIS_"`

	// Remote ERP API configuration
	ERP ERPConfig `envPrefix:"ERP_"`

	// Support mailbox configuration
	Support SupportConfig `envPrefix:"SUPPORT_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.ERP.Sanitize()

	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
