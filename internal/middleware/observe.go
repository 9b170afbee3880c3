package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/maderoluz/biochimeneas-backend/internal/logger"
	"github.com/maderoluz/biochimeneas-backend/internal/metrics"
)

// Observe logs every request and records the Prometheus HTTP metrics.
func Observe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()
		method := c.Method()
		// route pattern, not the raw URL, to keep label cardinality bounded
		path := c.Route().Path

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration.Seconds())

		logger.Get().Info("request",
			zap.String("method", method),
			zap.String("path", c.OriginalURL()),
			zap.Int("status", status),
			zap.Duration("duration", duration),
		)
		return err
	}
}
