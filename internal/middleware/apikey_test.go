package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newAPIKeyApp(expected string) *fiber.App {
	app := fiber.New()
	app.Post("/intake", APIKey(expected), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	return app
}

func TestAPIKeyAcceptsMatchingKey(t *testing.T) {
	app := newAPIKeyApp("secret-key")

	req := httptest.NewRequest("POST", "/intake", nil)
	req.Header.Set("X-API-Key", "secret-key")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestAPIKeyRejectsMissingOrWrongKey(t *testing.T) {
	app := newAPIKeyApp("secret-key")

	resp, err := app.Test(httptest.NewRequest("POST", "/intake", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("POST", "/intake", nil)
	req.Header.Set("X-API-Key", "wrong")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAPIKeyDisabledWithoutConfiguredKey(t *testing.T) {
	app := newAPIKeyApp("")

	req := httptest.NewRequest("POST", "/intake", nil)
	req.Header.Set("X-API-Key", "anything")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
