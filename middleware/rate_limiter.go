package middleware

import (
	"api/metrics"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// how long an idle visitor entry survives before being pruned
const visitorTTL = 10 * time.Minute

type RateLimiter struct {
	visitors map[string]*Visitor
	mu       sync.Mutex
	rate     int           // Maximum requests per minute
	burst    int           // Burst capacity
	interval time.Duration // Refill interval
}

type Visitor struct {
	tokens      int
	lastUpdated time.Time
}

func NewRateLimiter(rate int, burst int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*Visitor),
		rate:     rate,
		burst:    burst,
		interval: time.Minute,
	}
	go rl.pruneLoop()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	visitor, exists := rl.visitors[ip]
	if !exists {
		visitor = &Visitor{
			tokens:      rl.burst,
			lastUpdated: time.Now(),
		}
		rl.visitors[ip] = visitor
	}

	// Refill tokens
	now := time.Now()
	elapsed := now.Sub(visitor.lastUpdated)
	refill := int(elapsed / rl.interval)
	if refill > 0 {
		visitor.tokens += refill * rl.rate
		if visitor.tokens > rl.burst {
			visitor.tokens = rl.burst
		}
		visitor.lastUpdated = now
	}

	if visitor.tokens > 0 {
		visitor.tokens--
		return true
	}

	return false
}

// pruneLoop drops visitors that have been idle long enough to be fully
// refilled anyway, keeping the map bounded
func (rl *RateLimiter) pruneLoop() {
	for {
		time.Sleep(visitorTTL)
		cutoff := time.Now().Add(-visitorTTL)
		rl.mu.Lock()
		for ip, visitor := range rl.visitors {
			if visitor.lastUpdated.Before(cutoff) {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func RateLimiterMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.Allow(ip) {
			// Record rate limiter rejection in metrics
			metrics.RateLimiterRejections.WithLabelValues(ip).Inc()

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
