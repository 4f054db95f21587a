package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scholaris/scholaris-backend/internal/response"
)

// staleAfter is how long an idle client bucket survives before the
// cleanup loop drops it.
const staleAfter = 3 * time.Minute

// RateLimiter is a per-IP token bucket. Buckets refill by whole
// intervals, so a client that waits out the interval gets its full
// allowance back at once.
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	limit    int
	interval time.Duration
}

type bucket struct {
	remaining int
	refilled  time.Time
}

// NewRateLimiter allows limit requests per interval per client IP.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets:  make(map[string]*bucket),
		limit:    limit,
		interval: interval,
	}

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			rl.evictStale()
		}
	}()

	return rl
}

// Middleware rejects requests over the limit with 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[ip]
	if !ok {
		b = &bucket{remaining: rl.limit, refilled: time.Now()}
		rl.buckets[ip] = b
	}

	if intervals := int(time.Since(b.refilled) / rl.interval); intervals > 0 {
		b.remaining += intervals * rl.limit
		if b.remaining > rl.limit {
			b.remaining = rl.limit
		}
		b.refilled = time.Now()
	}

	if b.remaining <= 0 {
		return false
	}
	b.remaining--
	return true
}

func (rl *RateLimiter) evictStale() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, b := range rl.buckets {
		if time.Since(b.refilled) > staleAfter {
			delete(rl.buckets, ip)
		}
	}
}
