package middleware

import (
	"api/metrics"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware collects HTTP request metrics
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		// Increment in-progress counter
		metrics.RequestInProgress.WithLabelValues(method, path).Inc()

		// Start timer
		startTime := time.Now()

		// Process request
		c.Next()

		// Record request duration
		duration := time.Since(startTime).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		// Increment total requests counter
		metrics.RequestCounter.WithLabelValues(status, method, path).Inc()

		// Observe request duration
		metrics.RequestDuration.WithLabelValues(status, method, path).Observe(duration)

		// Decrement in-progress counter
		metrics.RequestInProgress.WithLabelValues(method, path).Dec()
	}
}
