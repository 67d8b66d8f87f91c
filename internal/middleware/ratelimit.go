package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ipLimiter hands out one token bucket per client IP.
type ipLimiter struct {
	mu         sync.Mutex
	limiters   map[string]*rate.Limiter
	lastAccess map[string]time.Time
	rate       rate.Limit
	burst      int
}

func newIPLimiter(perMinute int) *ipLimiter {
	return &ipLimiter{
		limiters:   make(map[string]*rate.Limiter),
		lastAccess: make(map[string]time.Time),
		rate:       rate.Limit(float64(perMinute) / 60.0),
		burst:      max(1, perMinute/10),
	}
}

func (l *ipLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters[ip] = limiter
	}
	l.lastAccess[ip] = time.Now()
	return limiter.Allow()
}

// evict drops buckets idle for longer than maxAge.
func (l *ipLimiter) evict(maxAge time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cutoff := time.Now().Add(-maxAge)
	for ip, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.limiters, ip)
			delete(l.lastAccess, ip)
		}
	}
}

// RateLimit caps requests per client IP. perMinute <= 0 disables it.
func RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	l := newIPLimiter(perMinute)
	var calls int
	var mu sync.Mutex
	return func(c *gin.Context) {
		mu.Lock()
		calls++
		if calls%1000 == 0 {
			l.evict(10 * time.Minute)
		}
		mu.Unlock()

		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
