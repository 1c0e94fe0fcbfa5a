package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const CtxRequestID = "request_id"

// RequestIDMiddleware tags every request with an id, honoring one the
// client already sent so ids stay stable across proxies.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(CtxRequestID, id)
		c.Set(fiber.HeaderXRequestID, id)
		return c.Next()
	}
}
