package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/artneelam/studio-api/internal/dto"
	"github.com/artneelam/studio-api/internal/models"
	"github.com/artneelam/studio-api/internal/service"
)

type registrationServiceStub struct {
	lead models.Lead
	err  error
}

func (s *registrationServiceStub) Register(_ context.Context, _ dto.RegistrationRequest) (models.Lead, error) {
	return s.lead, s.err
}

func newRegistrationApp(stub *registrationServiceStub) *fiber.App {
	app := fiber.New()
	handler := NewRegistrationHandler(stub, zerolog.Nop())
	handler.Register(app.Group("/api/v1/register"))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) int {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRegistrationAccepted(t *testing.T) {
	stub := &registrationServiceStub{lead: models.Lead{ID: "lead-1"}}
	app := newRegistrationApp(stub)

	status := postJSON(t, app, "/api/v1/register", dto.RegistrationRequest{Name: "Riya", Phone: "9876543210"})
	require.Equal(t, fiber.StatusCreated, status)
}

func TestRegistrationValidationFailure(t *testing.T) {
	stub := &registrationServiceStub{err: service.ErrInvalidRegistration}
	app := newRegistrationApp(stub)

	status := postJSON(t, app, "/api/v1/register", dto.RegistrationRequest{Name: "R"})
	require.Equal(t, fiber.StatusBadRequest, status)
}

func TestRegistrationDuplicateThrottled(t *testing.T) {
	stub := &registrationServiceStub{err: service.ErrDuplicateRegistration}
	app := newRegistrationApp(stub)

	status := postJSON(t, app, "/api/v1/register", dto.RegistrationRequest{Name: "Riya", Phone: "9876543210"})
	require.Equal(t, fiber.StatusTooManyRequests, status)
}
