package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Harman090807/Hotel-management-app/metrics"
)

// Metrics times every request into the duration histogram, labelled by the
// matched route pattern so path parameters don't explode the cardinality.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
