package middleware

import (
	"strconv"
	"time"

	"user-api-service/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics returns a middleware that records the request counter and
// latency histogram for every route. Recording happens after the
// handler completes, so the counter carries the final status code and
// error responses are counted the same as successes.
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			// Unmatched route; avoid a label per unknown path.
			endpoint = "unmatched"
		}

		collector.RecordRequest(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
