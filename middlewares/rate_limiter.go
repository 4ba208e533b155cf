package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than cleanupAfter are dropped so the map does not grow unbounded.
type RateLimiter struct {
	limit        rate.Limit
	burst        int
	cleanupAfter time.Duration
	mu           sync.Mutex
	clients      map[string]*client
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows up to rps requests per second per IP with the given
// burst.
func NewRateLimiter(rps int, burst int) *RateLimiter {
	return &RateLimiter{
		limit:        rate.Limit(rps),
		burst:        burst,
		cleanupAfter: 3 * time.Minute,
		clients:      make(map[string]*client),
	}
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		rl.mu.Lock()
		cl, exists := rl.clients[ip]
		if !exists {
			cl = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
			rl.clients[ip] = cl
		}
		cl.lastSeen = time.Now()
		rl.cleanupLocked()
		rl.mu.Unlock()

		if !cl.limiter.Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}

		c.Next()
	}
}

// cleanupLocked drops idle buckets. Caller holds rl.mu.
func (rl *RateLimiter) cleanupLocked() {
	cutoff := time.Now().Add(-rl.cleanupAfter)
	for ip, cl := range rl.clients {
		if cl.lastSeen.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}
