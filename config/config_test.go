package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.False(t, cfg.IsDev)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 24*time.Hour, cfg.HTTP.SessionTTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.URI)
	assert.Equal(t, "https://api.kylianerp.com/api", cfg.ERP.BaseURL)
	assert.Equal(t, "https://api.kylianerp.com", cfg.ERP.FileBaseURL)
	assert.Equal(t, 30*time.Second, cfg.ERP.Timeout)
	assert.Equal(t, 911115, cfg.ERP.DefaultEmployeeID)
	assert.Equal(t, 59, cfg.ERP.DefaultCompanyID)
	assert.False(t, cfg.Support.Enabled())
}

func TestAppConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("REDIS_URI", "redis.internal:6380")
	t.Setenv("ERP_BASE_URL", "http://localhost:4000/api")
	t.Setenv("ERP_DEFAULT_COMPANY_ID", "77")
	t.Setenv("SUPPORT_SMTP_HOST", "smtp.internal")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.URI)
	assert.Equal(t, "http://localhost:4000/api", cfg.ERP.BaseURL)
	assert.Equal(t, 77, cfg.ERP.DefaultCompanyID)
	assert.True(t, cfg.Support.Enabled())
}

func TestAppConfig_Sanitize_ClampsDurations(t *testing.T) {
	cfg := AppConfig{}
	cfg.HTTP.SessionTTL = -time.Hour
	cfg.ERP.Timeout = 0
	cfg.Sanitize()

	assert.Equal(t, 24*time.Hour, cfg.HTTP.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.ERP.Timeout)
}

func TestAppConfig_DetectDevMode_NodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.True(t, cfg.IsDev)
}
