package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/mateprofit/internal/metrics"
)

// Metrics counts every request by method, matched route and status code.
func Metrics(rec *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		rec.ObserveHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status())
	}
}
