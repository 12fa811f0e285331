package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	// Entries idle longer than this are dropped when the map needs trimming.
	limiterIdleAfter  = 3 * time.Minute
	limiterMaxEntries = 1024
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiters hands out one token bucket per client key. Idle entries are
// swept once the map reaches limiterMaxEntries, keeping it bounded.
type clientLimiters struct {
	mu      sync.Mutex
	rps     rate.Limit
	burst   int
	entries map[string]*limiterEntry
}

func newClientLimiters(rps rate.Limit, burst int) *clientLimiters {
	return &clientLimiters{
		rps:     rps,
		burst:   burst,
		entries: make(map[string]*limiterEntry),
	}
}

func (l *clientLimiters) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	e, ok := l.entries[key]
	if !ok {
		if len(l.entries) >= limiterMaxEntries {
			l.sweep(now)
		}
		e = &limiterEntry{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = now

	return e.limiter
}

// sweep drops idle entries. Callers must hold mu.
func (l *clientLimiters) sweep(now time.Time) {
	for key, e := range l.entries {
		if now.Sub(e.lastSeen) > limiterIdleAfter {
			delete(l.entries, key)
		}
	}
}

// RateLimitMiddleware applies a token-bucket limiter per client. The key is
// the authenticated uid when present, the client IP otherwise.
func RateLimitMiddleware(rps rate.Limit, burst int) gin.HandlerFunc {
	limiters := newClientLimiters(rps, burst)

	return func(c *gin.Context) {
		key := c.GetString("firebase_uid")
		if key == "" {
			key = c.ClientIP()
		}

		if !limiters.get(key).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
