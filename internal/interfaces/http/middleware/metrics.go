package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPObserver records request metrics. Implemented by *metrics.Registry.
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
	InFlight() func()
}

// HTTPMetrics records count, latency and in-flight requests per route pattern.
func HTTPMetrics(observer HTTPObserver, skipPaths ...string) gin.HandlerFunc {
	if observer == nil {
		return func(c *gin.Context) { c.Next() }
	}
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		done := observer.InFlight()
		defer done()

		c.Next()

		observer.ObserveHTTP(c.Request.Method, getRoutePattern(c), c.Writer.Status(), time.Since(start))
	}
}

// getRoutePattern returns the route pattern (e.g., "/api/properties/:id")
// instead of the actual path to avoid high cardinality issues.
func getRoutePattern(c *gin.Context) string {
	route := c.FullPath()
	if route == "" {
		return "unknown"
	}
	return route
}
