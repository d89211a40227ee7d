package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

const slogLoggerKey = "slogLogger"

// SlogLogger logs one line per request, tagged with the correlation id.
func SlogLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestLogger := logger.With(
			slog.String("correlation_id", GetCorrelationID(c)),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
		)
		c.Locals(slogLoggerKey, requestLogger)

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		requestLogger.Info("request completed",
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
		)
		return err
	}
}

// LoggerFromContext returns the request logger, or the default one outside a request.
func LoggerFromContext(c *fiber.Ctx) *slog.Logger {
	if logger, ok := c.Locals(slogLoggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
