package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger logs one event per request. The level follows the status:
// 5xx at error, 4xx at warn, everything else at debug so probes stay quiet in prod.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		default:
			event = logger.Debug()
		}

		event = event.
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Str("query", c.Request.URL.RawQuery).
			Int("status", status).
			Dur("took", time.Since(start))
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.Msg("request handled")
	}
}
