package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-revshare/internal/api/shared/errors"
	"github.com/feral-file/ff-revshare/internal/logger"
)

// REQUEST_ID_HEADER is echoed back on every response
const REQUEST_ID_HEADER = "X-Request-ID"

// RequestID tags the request context with a request ID, reusing the one sent by the client when present
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(REQUEST_ID_HEADER)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(REQUEST_ID_HEADER, requestID)

		ctx := logger.WithFields(c.Request.Context(), zap.String("request_id", requestID))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// Logger returns a gin middleware for structured logging using zap
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.WarnCtx(c.Request.Context(), "API request failed", fields...)
			return
		}
		logger.InfoCtx(c.Request.Context(), "API request", fields...)
	}
}

// Recovery returns a gin middleware for panic recovery with logging
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %v", err),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, apierrors.ErrorResponse{
					Error: apierrors.NewInternalError("Internal server error"),
				})
			}
		}()
		c.Next()
	}
}
