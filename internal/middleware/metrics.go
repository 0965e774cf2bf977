package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/twinkal0201/cardio-70-AI/pkg/metrics"
)

// Metrics records per-route request counts and durations. The route
// template is used as the path label to keep cardinality bounded.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		m.RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		m.RequestTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
