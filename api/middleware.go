package api

import (
	"time"

	"github.com/anisan-cli/anitaku/log"
	"github.com/gin-gonic/gin"
)

// requestLog writes one line per served request.
func requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := map[string]any{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"query":   c.Request.URL.RawQuery,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}
		if len(c.Errors) > 0 {
			fields["error"] = c.Errors.String()
		}
		log.WithFields(fields, "request")
	}
}
