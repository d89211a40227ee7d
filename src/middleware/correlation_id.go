package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"
	correlationIDKey    = "correlationID"
)

// CorrelationID makes sure every request carries an id, reusing the caller's when sent.
func CorrelationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(CorrelationIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(correlationIDKey, id)
		c.Set(CorrelationIDHeader, id)

		return c.Next()
	}
}

func GetCorrelationID(c *fiber.Ctx) string {
	if id, ok := c.Locals(correlationIDKey).(string); ok {
		return id
	}
	return ""
}
