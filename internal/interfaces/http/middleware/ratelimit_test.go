package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frozenLimiter returns a limiter whose clock only moves through the
// returned func.
func frozenLimiter(limit int, window time.Duration) (*RateLimiter, func(time.Duration)) {
	rl := NewRateLimiter(limit, window)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl, func(d time.Duration) { now = now.Add(d) }
}

func TestRateLimiter_Burst(t *testing.T) {
	rl, _ := frozenLimiter(3, time.Minute)

	assert.Equal(t, 3, rl.Remaining("ip:1"))
	for i := range 3 {
		require.True(t, rl.Allow("ip:1"), "request %d", i+1)
	}
	assert.False(t, rl.Allow("ip:1"))
	assert.Zero(t, rl.Remaining("ip:1"))
	assert.True(t, rl.Allow("ip:2"), "keys have separate buckets")
}

func TestRateLimiter_Refill(t *testing.T) {
	rl, advance := frozenLimiter(2, time.Minute)
	rl.Allow("k")
	rl.Allow("k")
	require.False(t, rl.Allow("k"))

	advance(29 * time.Second)
	assert.False(t, rl.Allow("k"), "one token takes window/limit to refill")

	advance(time.Second)
	assert.True(t, rl.Allow("k"))
}

func TestNewRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	assert.Equal(t, 1, rl.Limit())
	assert.Equal(t, time.Minute, rl.window)
}

func TestRateLimiter_EvictsIdleBuckets(t *testing.T) {
	rl, advance := frozenLimiter(1, time.Second)
	for i := range 1024 {
		rl.Allow(string(rune('a' + i%26)) + time.Duration(i).String())
	}
	advance(time.Minute)
	rl.Allow("fresh")
	assert.Len(t, rl.buckets, 1)
}

func TestRateLimiter_Concurrent(t *testing.T) {
	rl := NewRateLimiter(100, time.Hour)
	var allowed atomic.Int32
	var wg sync.WaitGroup
	for range 150 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("shared") {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 100, allowed.Load())
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if user := c.GetHeader("X-Test-User"); user != "" {
			c.Set(JWTUserIDKey, user)
		}
		c.Next()
	})
	router.Use(RateLimit(NewRateLimiter(2, time.Minute)))
	router.GET("/api/properties", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(user string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
		if user != "" {
			req.Header.Set("X-Test-User", user)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := send("")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	send("")
	w = send("")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "ERR_RATE_LIMITED")

	assert.Equal(t, http.StatusOK, send("owner-1").Code, "an authenticated owner is not limited by its IP")
}

func TestRateLimitByKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimitByKey(NewRateLimiter(1, time.Minute), func(c *gin.Context) string {
		return c.GetHeader("Idempotency-Key")
	}))
	router.POST("/upload", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for _, key := range []string{"k1", "k1", "k2"} {
		req := httptest.NewRequest(http.MethodPost, "/upload", nil)
		req.Header.Set("Idempotency-Key", key)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusOK}, codes)
}
