package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	DefaultCookieName = "jwt_token"
	DefaultSessionTTL = 30 * 24 * time.Hour
)

type CookieOptions struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

func (o CookieOptions) withDefaults() CookieOptions {
	if o.Name == "" {
		o.Name = DefaultCookieName
	}
	if o.TTL <= 0 {
		o.TTL = DefaultSessionTTL
	}
	return o
}

// CookieSession reads and writes the token cookie of a single request.
// Writes are remembered so a later Get in the same request sees them.
type CookieSession struct {
	c       *gin.Context
	opts    CookieOptions
	written bool
	token   string
}

func NewCookieSession(c *gin.Context, opts CookieOptions) *CookieSession {
	return &CookieSession{c: c, opts: opts.withDefaults()}
}

func (s *CookieSession) Get() (string, bool) {
	if s.written {
		return s.token, s.token != ""
	}
	token, err := s.c.Cookie(s.opts.Name)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

func (s *CookieSession) Set(token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(s.opts.Name, token, int(s.opts.TTL.Seconds()), "/", "", s.opts.Secure, true)
	s.written, s.token = true, token
	return nil
}

func (s *CookieSession) Clear() error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(s.opts.Name, "", -1, "/", "", s.opts.Secure, true)
	s.written, s.token = true, ""
	return nil
}
