package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LoggerMiddleware emits one structured line per request. Server errors
// log at error level so they stand out in aggregation.
func LoggerMiddleware(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		reqID, _ := c.Locals(CtxRequestID).(string)
		fields := []zap.Field{
			zap.String("request_id", reqID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Int("bytes", len(c.Response().Body())),
			zap.Duration("took", time.Since(start)),
			zap.String("ip", c.IP()),
		}
		if status >= fiber.StatusInternalServerError {
			log.Error("request", fields...)
		} else {
			log.Info("request", fields...)
		}

		return err
	}
}
