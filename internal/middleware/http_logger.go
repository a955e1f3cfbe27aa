package middleware

import (
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/logger"
)

func HTTPLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip health checks
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		start := time.Now()
		queryParams := c.Request.URL.Query()

		// Process request
		c.Next()

		latency := time.Since(start)
		resStatus := c.Writer.Status()

		logEvent := logger.AppLogger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Int("status", resStatus).
			Dur("latency_ms", latency).
			Str("client_ip", c.ClientIP())

		if len(c.Errors) > 0 {
			logEvent = logEvent.Strs("errors", c.Errors.Errors())
		}

		logEvent.Msg("request_processed")

		logger.HttpLogger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", resStatus).
			Str("client_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Str("referrer", c.Request.Referer()).
			Int("response_bytes", c.Writer.Size()).
			Dict("query_params", logDictFromValues(queryParams)).
			Msg("http_trace")
	}
}

func logDictFromValues(values url.Values) *zerolog.Event {
	dict := zerolog.Dict()
	for k, v := range values {
		dict.Strs(k, v)
	}
	return dict
}
