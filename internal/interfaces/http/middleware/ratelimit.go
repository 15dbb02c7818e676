package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/owneriq/backend/internal/interfaces/http/dto"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per key. A bucket holds limit tokens and
// refills one token every window/limit.
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	limit    int
	window   time.Duration
	interval time.Duration
	idleTTL  time.Duration
	now      func() time.Time
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows limit requests per window and key
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		buckets:  make(map[string]*bucket),
		limit:    limit,
		window:   window,
		interval: window / time.Duration(limit),
		idleTTL:  2 * window,
		now:      time.Now,
	}
}

func (rl *RateLimiter) bucket(key string, now time.Time) *bucket {
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Every(rl.interval), rl.limit)}
		rl.buckets[key] = b
	}
	b.lastSeen = now
	return b
}

// Allow consumes one token for key
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.evictIdle(now)
	return rl.bucket(key, now).limiter.AllowN(now, 1)
}

// Remaining returns the whole tokens left for key
func (rl *RateLimiter) Remaining(key string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok {
		return rl.limit
	}
	tokens := int(math.Floor(b.limiter.TokensAt(rl.now())))
	if tokens < 0 {
		return 0
	}
	return tokens
}

// Limit returns the configured burst
func (rl *RateLimiter) Limit() int {
	return rl.limit
}

// evictIdle drops buckets that refilled completely long ago. Caller holds mu.
func (rl *RateLimiter) evictIdle(now time.Time) {
	if len(rl.buckets) < 1024 {
		return
	}
	for key, b := range rl.buckets {
		if now.Sub(b.lastSeen) > rl.idleTTL {
			delete(rl.buckets, key)
		}
	}
}

// RateLimit limits by client IP, or by owner once authenticated
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return RateLimitByKey(limiter, func(c *gin.Context) string {
		if owner := GetJWTUserID(c); owner != "" {
			return "user:" + owner
		}
		return "ip:" + c.ClientIP()
	})
}

// RateLimitByKey returns a rate limiting middleware with custom key extractor
func RateLimitByKey(limiter *RateLimiter, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(math.Ceil(limiter.interval.Seconds())))
	return func(c *gin.Context) {
		key := keyFunc(c)

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		if !limiter.Allow(key) {
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeRateLimited,
				"Too many requests. Please try again later.",
				c.GetString(RequestIDKey),
			))
			return
		}
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.Remaining(key)))
		c.Next()
	}
}
