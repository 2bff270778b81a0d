package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/custodia-labs/promptmap/internal/logger"
)

const (
	headerRequestID = "X-Request-ID"
	ctxLoggerKey    = "logger"
)

// requestID tags every request with an id, taken from X-Request-ID when the
// client sends one, and logs the request once it completes.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(headerRequestID, id)

		log := logger.With(zap.String("request_id", id))
		c.Set(ctxLoggerKey, log)

		start := time.Now()
		c.Next()

		log.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// requestLogger returns the logger tagged with the request id.
func requestLogger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(ctxLoggerKey); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return logger.With()
}
