package middleware

import (
	"Giftspin/pkg/context"
	"Giftspin/pkg/log"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GinZap 访问日志
func GinZap() gin.HandlerFunc {
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
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", c.GetString(context.CtxRequestID)),
		}
		if uid, ok := c.Get(context.CtxUserID); ok {
			fields = append(fields, zap.Any("user_id", uid))
		}

		switch {
		case len(c.Errors) > 0:
			log.L.Error(c.Errors.String(), fields...)
		case c.Writer.Status() >= 500:
			log.L.Error("request", fields...)
		default:
			log.L.Info("request", fields...)
		}
	}
}
