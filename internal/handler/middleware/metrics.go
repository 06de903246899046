package middleware

import (
	"time"

	"car-rental-api/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records per-request counters and latency histograms.
// The route template (":id" form) is used as the path label to keep
// cardinality bounded.
func MetricsMiddleware(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.IncInFlight()

		c.Next()

		m.DecInFlight()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
