package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"repair_visits/internal/infrastructure/metrics"
)

// Metrics records request counts and latency per route template, so
// /visits/V1 and /visits/V2 share a series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.RequestStarted()
		defer metrics.RequestFinished()

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
