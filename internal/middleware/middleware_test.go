package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/justsurfingit/jobby-board/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func gatedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	r := gin.New()
	r.Use(RequestID(), AccessLog(zaptest.NewLogger(t)), Sessions(auth.CookieOptions{}))
	r.GET("/jobs", RequireSession(), func(c *gin.Context) {
		tok, _ := SessionFrom(c).Get()
		c.String(http.StatusOK, tok)
	})
	r.GET("/api/jobs", RequireBearer(), func(c *gin.Context) {
		tok, _ := SessionFrom(c).Get()
		c.String(http.StatusOK, tok)
	})
	return r
}

// ---------------------------------------------------------------------------
// RequireSession
// ---------------------------------------------------------------------------

func TestRequireSession_RedirectsWithoutToken(t *testing.T) {
	w := httptest.NewRecorder()
	gatedRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs?search=go", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next=%2Fjobs%3Fsearch%3Dgo", w.Header().Get("Location"))
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestRequireSession_PassesWithCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.AddCookie(&http.Cookie{Name: auth.DefaultCookieName, Value: "tok"})
	w := httptest.NewRecorder()
	gatedRouter(t).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok", w.Body.String())
}

// ---------------------------------------------------------------------------
// RequireBearer
// ---------------------------------------------------------------------------

func TestRequireBearer(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cookie string
		code   int
		body   string
	}{
		{name: "bearer header", header: "Bearer abc", code: http.StatusOK, body: "abc"},
		{name: "lowercase scheme", header: "bearer abc", code: http.StatusOK, body: "abc"},
		{name: "cookie fallback", cookie: "from-cookie", code: http.StatusOK, body: "from-cookie"},
		{name: "bad scheme", header: "Basic abc", code: http.StatusUnauthorized},
		{name: "nothing", code: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: auth.DefaultCookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			gatedRouter(t).ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// next handling
// ---------------------------------------------------------------------------

func TestSafeNext(t *testing.T) {
	assert.Equal(t, "/", SafeNext(""))
	assert.Equal(t, "/jobs?search=go", SafeNext("/jobs?search=go"))
	assert.Equal(t, "/", SafeNext("//evil.example"))
	assert.Equal(t, "/", SafeNext("https://evil.example"))
	assert.Equal(t, "/", SafeNext("/\\evil.example"))
	assert.Equal(t, "/", SafeNext("/login"))
	assert.Equal(t, "/", SafeNext("/\t/evil.example/"))
	assert.Equal(t, "/", SafeNext("/\r/evil.example/"))
	assert.Equal(t, "/", SafeNext("/\n/evil.example/"))
	assert.Equal(t, "/", SafeNext("/jobs\\x"))
	assert.Equal(t, "/", SafeNext("jobs"))
	assert.Equal(t, "/", SafeNext("javascript:alert(1)"))
	assert.Equal(t, "/jobs?employment_type=FULLTIME%2CPARTTIME", SafeNext("/jobs?employment_type=FULLTIME%2CPARTTIME"))
}

func TestLoginURL(t *testing.T) {
	assert.Equal(t, "/login", LoginURL("/"))
	assert.Equal(t, "/login?next=%2Fjobs", LoginURL("/jobs"))
}

// ---------------------------------------------------------------------------
// RequestID / RateLimit / Recovery
// ---------------------------------------------------------------------------

func TestRequestID_ReusesIncoming(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	w := httptest.NewRecorder()
	gatedRouter(t).ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get(HeaderRequestID))
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.POST("/login", RateLimit(10), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	// burst is perMinute/10 = 1
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	r := gin.New()
	r.POST("/login", RateLimit(0), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zaptest.NewLogger(t)))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
