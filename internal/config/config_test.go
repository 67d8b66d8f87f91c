package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "https://apis.ccbp.in", cfg.JobsAPIBaseURL)
	assert.Equal(t, time.Duration(0), cfg.APITimeout)
	assert.Equal(t, "jwt_token", cfg.SessionCookieName)
	assert.Equal(t, 30*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.DropStaleResults)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("LOGIN_RATE_PER_MINUTE", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SESSION_TTL", "not-a-duration")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, 5, cfg.LoginRatePerMinute)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 30*24*time.Hour, cfg.SessionTTL)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SESSION_COOKIE_NAME=jobby_session\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SESSION_COOKIE_NAME") })

	cfg := Load(path)
	assert.Equal(t, "jobby_session", cfg.SessionCookieName)
	assert.Equal(t, "jobby_session", cfg.CookieOptions().Name)
}

func TestNewLogger_UnknownLevel(t *testing.T) {
	cfg := &Config{LogLevel: "loud"}
	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
