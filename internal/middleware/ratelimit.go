package middleware

import (
	"fmt"
	"time"

	"github.com/adfluence/backend/internal/http/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware caps requests per client IP per path within the
// window. Redis errors fail open: throttling is protection, not a
// dependency the API should die on.
func RateLimitMiddleware(rdb *redis.Client, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := fmt.Sprintf("ratelimit:%s:%s", c.Path(), c.IP())
		ctx := c.Context()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			return c.Next()
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			return c.Status(fiber.StatusTooManyRequests).
				JSON(dto.ErrorResponse{Error: "rate limit exceeded"})
		}
		return c.Next()
	}
}
