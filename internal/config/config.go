package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/justsurfingit/jobby-board/internal/auth"
	"github.com/justsurfingit/jobby-board/internal/services"
)

type Config struct {
	HTTPPort           string
	JobsAPIBaseURL     string
	APITimeout         time.Duration
	SessionCookieName  string
	SessionTTL         time.Duration
	CookieSecure       bool
	LoginRatePerMinute int
	CORSAllowedOrigins []string
	LogLevel           string
	GinMode            string
	DropStaleResults   bool
}

// Load reads an optional .env file and then the environment.
// A missing .env is not an error; real env vars always win over it.
func Load(files ...string) *Config {
	_ = godotenv.Load(files...)

	return &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		JobsAPIBaseURL:     getEnv("JOBS_API_BASE_URL", services.DefaultBaseURL),
		APITimeout:         getDuration("API_TIMEOUT", 0),
		SessionCookieName:  getEnv("SESSION_COOKIE_NAME", auth.DefaultCookieName),
		SessionTTL:         getDuration("SESSION_TTL", auth.DefaultSessionTTL),
		CookieSecure:       getBool("COOKIE_SECURE", false),
		LoginRatePerMinute: getInt("LOGIN_RATE_PER_MINUTE", 30),
		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		GinMode:            getEnv("GIN_MODE", "release"),
		DropStaleResults:   getBool("DROP_STALE_RESULTS", false),
	}
}

func (c *Config) CookieOptions() auth.CookieOptions {
	return auth.CookieOptions{Name: c.SessionCookieName, TTL: c.SessionTTL, Secure: c.CookieSecure}
}

func (c *Config) ServicesConfig() services.Config {
	return services.Config{BaseURL: c.JobsAPIBaseURL, Timeout: c.APITimeout}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
