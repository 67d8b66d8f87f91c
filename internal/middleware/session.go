package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/jobby-board/internal/auth"
)

const ctxSession = "session"

// Sessions attaches a cookie-backed auth.Session to every request.
func Sessions(opts auth.CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		SetSession(c, auth.NewCookieSession(c, opts))
		c.Next()
	}
}

// SetSession replaces the session handlers will see for this request.
func SetSession(c *gin.Context, s auth.Session) {
	c.Set(ctxSession, s)
}

// SessionFrom returns the request's session. Handlers mounted without
// Sessions get an empty one.
func SessionFrom(c *gin.Context) auth.Session {
	if v, ok := c.Get(ctxSession); ok {
		if s, ok := v.(auth.Session); ok {
			return s
		}
	}
	return auth.NewMemorySession("")
}

// RequireSession sends visitors without a token to the login page before
// anything renders. The original address rides along as ?next=.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := SessionFrom(c).Get(); ok {
			c.Next()
			return
		}
		c.Redirect(http.StatusFound, LoginURL(c.Request.URL.RequestURI()))
		c.Abort()
	}
}

// RequireBearer guards the JSON api. It takes an Authorization bearer header
// first and falls back to the session cookie; the winner replaces the request
// session so handlers read one place.
func RequireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
				return
			}
			SetSession(c, auth.NewMemorySession(strings.TrimSpace(parts[1])))
			c.Next()
			return
		}
		if _, ok := SessionFrom(c).Get(); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
			return
		}
		c.Next()
	}
}

func LoginURL(next string) string {
	if next == "" || next == "/" {
		return "/login"
	}
	return "/login?next=" + url.QueryEscape(next)
}

// SafeNext keeps only same-site absolute paths so ?next= cannot bounce a
// user to another host. Browsers strip tab, CR and LF before parsing and
// treat a backslash like a slash, so any of those rejects the value outright.
func SafeNext(next string) string {
	if next == "" || strings.ContainsAny(next, "\t\r\n\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Opaque != "" {
		return "/"
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	if strings.HasPrefix(u.Path, "/login") || strings.HasPrefix(u.Path, "/logout") {
		return "/"
	}
	return next
}
