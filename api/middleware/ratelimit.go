package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	// idleTimeout is how long a client may stay quiet before its limiter
	// state is dropped.
	idleTimeout = 10 * time.Minute
	// sweepInterval bounds how often the client map is scanned for idle
	// entries.
	sweepInterval = time.Minute
)

// clientLimiters tracks one token bucket per client IP and evicts entries
// that have been idle for idleTimeout, so the map stays proportional to the
// set of recently active clients.
type clientLimiters struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	rps       rate.Limit
	burst     int
	lastSweep time.Time
}

type clientLimiter struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func newClientLimiters(rps float64, burst int) *clientLimiters {
	if burst <= 0 {
		burst = 1
	}
	return &clientLimiters{
		clients: make(map[string]*clientLimiter),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
}

func (c *clientLimiters) allow(ip string, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if now.Sub(c.lastSweep) >= sweepInterval {
		c.sweepLocked(now)
	}

	entry, ok := c.clients[ip]
	if !ok {
		entry = &clientLimiter{lim: rate.NewLimiter(c.rps, c.burst)}
		c.clients[ip] = entry
	}
	entry.lastSeen = now
	return entry.lim.AllowN(now, 1)
}

func (c *clientLimiters) sweepLocked(now time.Time) {
	for ip, entry := range c.clients {
		if now.Sub(entry.lastSeen) > idleTimeout {
			delete(c.clients, ip)
		}
	}
	c.lastSweep = now
}

// PerClientLimit returns middleware that throttles requests per client IP
// with a token bucket. Returns nil when rps <= 0, meaning limiting is
// disabled.
func PerClientLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return nil
	}
	limiters := newClientLimiters(rps, burst)

	return func(c *gin.Context) {
		if !limiters.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"kind":  "rate_limited",
				"error": "too many requests",
			})
			return
		}
		c.Next()
	}
}
