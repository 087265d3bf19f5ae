package observability

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionIDLocal is the fiber.Locals key under which the session middleware stores the session id.
const SessionIDLocal = "session_id"

// RequestLogger logs every request once it has been handled and counts it.
func RequestLogger(logger *zap.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start)

		status := c.Response().StatusCode()
		route := c.Route().Path
		metrics.RecordRequest(route, c.Method(), status, elapsed)

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", elapsed),
		}
		if sid, ok := c.Locals(SessionIDLocal).(string); ok && sid != "" {
			fields = append(fields, zap.String("session_id", sid))
		}
		logger.Info("request", fields...)
		return err
	}
}
