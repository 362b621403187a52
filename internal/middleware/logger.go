package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mateprofit/internal/logger"
)

// RequestLogger is a Gin middleware that logs method, route, status code,
// latency and request ID (if available) once the request completes.
//
// Requests answered with 5xx are logged at error level, 4xx at warn level.
//
// Example log output:
//
//	{"level":"info","request_id":"123e4567-...","method":"POST","path":"/api/v1/profit","status":200,"latency_ms":3,"message":"http_request"}
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		rid, _ := c.Get(RequestIDKey)

		evt := logger.L().Info()
		switch {
		case status >= 500:
			evt = logger.L().Error()
		case status >= 400:
			evt = logger.L().Warn()
		}
		if len(c.Errors) > 0 {
			evt = evt.Str("errors", c.Errors.String())
		}

		evt.Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Str("route", c.FullPath()).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
