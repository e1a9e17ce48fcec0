package middleware

import (
	"net/http"
	"sync"
	"time"

	"citizens-voice-http-service/internal/error/code"
	"citizens-voice-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// TokenBucket is a simple token-bucket rate limiter
type TokenBucket struct {
	rate       float64   // tokens refilled per second
	capacity   int       // bucket capacity
	tokens     float64   // current tokens
	lastRefill time.Time // last refill time
	mu         sync.Mutex
}

// NewTokenBucket creates a token bucket limiter
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow tries to take one token
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

var (
	ipLimiters     = make(map[string]*TokenBucket)
	ipLimitersMu   sync.RWMutex
	pathLimiters   = make(map[string]*TokenBucket)
	pathLimitersMu sync.RWMutex
)

func ipLimiter(ip string, rate float64, capacity int) *TokenBucket {
	ipLimitersMu.RLock()
	limiter, ok := ipLimiters[ip]
	ipLimitersMu.RUnlock()
	if ok {
		return limiter
	}

	ipLimitersMu.Lock()
	defer ipLimitersMu.Unlock()
	if limiter, ok = ipLimiters[ip]; ok {
		return limiter
	}
	limiter = NewTokenBucket(rate, capacity)
	ipLimiters[ip] = limiter
	return limiter
}

func pathLimiter(path string, rate float64, capacity int) *TokenBucket {
	pathLimitersMu.RLock()
	limiter, ok := pathLimiters[path]
	pathLimitersMu.RUnlock()
	if ok {
		return limiter
	}

	pathLimitersMu.Lock()
	defer pathLimitersMu.Unlock()
	if limiter, ok = pathLimiters[path]; ok {
		return limiter
	}
	limiter = NewTokenBucket(rate, capacity)
	pathLimiters[path] = limiter
	return limiter
}

// IPRateLimiter limits requests per client IP
func IPRateLimiter(rate float64, capacity int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ipLimiter(c.ClientIP(), rate, capacity).Allow() {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// FunctionIPRateLimiter limits requests per client IP on the public
// collection endpoints, answering in their flat envelope instead of the
// application one.
func FunctionIPRateLimiter(rate float64, capacity int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ipLimiter(c.ClientIP(), rate, capacity).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}

// PathRateLimiter limits requests per route path across all clients
func PathRateLimiter(rate float64, capacity int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !pathLimiter(c.FullPath(), rate, capacity).Allow() {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
