package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// CacheInvalidator calls invalidate after every successful mutating request in
// the group it is attached to, so cached aggregates are rebuilt on the next read.
func CacheInvalidator(invalidate func(ctx context.Context)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return err
		}
		if c.Method() != fiber.MethodGet && c.Response().StatusCode() < fiber.StatusBadRequest {
			invalidate(c.UserContext())
		}
		return nil
	}
}
