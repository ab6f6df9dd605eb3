package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artneelam/studio-api/internal/utils"
)

// APIKey guards server-to-server intake endpoints with a shared X-API-Key
// header. When no key is configured the endpoint is disabled entirely.
func APIKey(expected string) fiber.Handler {
	expected = strings.TrimSpace(expected)

	return func(c *fiber.Ctx) error {
		if expected == "" {
			return utils.SendError(c, fiber.StatusServiceUnavailable, "lead intake is not configured")
		}

		provided := strings.TrimSpace(c.Get("X-API-Key"))
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid api key")
		}

		return c.Next()
	}
}
