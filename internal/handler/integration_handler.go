package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/artneelam/studio-api/internal/dto"
	"github.com/artneelam/studio-api/internal/service"
	"github.com/artneelam/studio-api/internal/utils"
)

// IntegrationHandler wires the server-to-server lead intake route. The API
// key check happens in middleware; this handler only validates the payload.
type IntegrationHandler struct {
	service service.LeadService
	logger  zerolog.Logger
}

// NewIntegrationHandler constructs the handler.
func NewIntegrationHandler(service service.LeadService, logger zerolog.Logger) *IntegrationHandler {
	return &IntegrationHandler{
		service: service,
		logger:  logger.With().Str("component", "integration_handler").Logger(),
	}
}

// Register attaches the intake endpoint to the router group.
func (h *IntegrationHandler) Register(router fiber.Router) {
	router.Post("/leads", h.ingest)
}

func (h *IntegrationHandler) ingest(c *fiber.Ctx) error {
	var payload dto.LeadIngestRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	lead, err := h.service.Ingest(c.Context(), payload)
	if err != nil {
		if errors.Is(err, service.ErrLeadNameRequired) {
			return utils.SendError(c, fiber.StatusBadRequest, "lead name is required")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("lead intake failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "lead ingested", lead)
}
