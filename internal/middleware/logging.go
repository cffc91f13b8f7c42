package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/ahara/backend/internal/logger"
	"github.com/pageza/ahara/backend/internal/metrics"
)

// RequestLogger logs each request once it has been served and records its
// latency under the matched route.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		latency := time.Since(start)
		metrics.RecordAPIRequest(c.Request.Method, route, status, latency)

		kv := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", latency,
			"client_ip", c.ClientIP(),
		}
		switch {
		case status >= 500:
			log.Error("request failed", kv...)
		case status >= 400:
			log.Warn("request rejected", kv...)
		default:
			log.Info("request served", kv...)
		}
	}
}
