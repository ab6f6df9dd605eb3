package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/artneelam/studio-api/internal/dto"
	"github.com/artneelam/studio-api/internal/service"
	"github.com/artneelam/studio-api/internal/utils"
)

// MessageHandler wires the WhatsApp composer-link routes.
type MessageHandler struct {
	service service.MessageService
	logger  zerolog.Logger
}

// NewMessageHandler constructs the handler.
func NewMessageHandler(service service.MessageService, logger zerolog.Logger) *MessageHandler {
	return &MessageHandler{
		service: service,
		logger:  logger.With().Str("component", "message_handler").Logger(),
	}
}

// Register attaches message endpoints to the router group.
func (h *MessageHandler) Register(router fiber.Router) {
	router.Post("/compose", h.compose)
	router.Post("/followup", h.followUp)
	router.Post("/broadcast", h.broadcast)
}

func (h *MessageHandler) compose(c *fiber.Ctx) error {
	var payload dto.MessageRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	link, err := h.service.Compose(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "message link rendered", link)
}

func (h *MessageHandler) followUp(c *fiber.Ctx) error {
	var payload dto.FollowUpRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	link, err := h.service.FollowUp(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "follow-up link rendered", link)
}

func (h *MessageHandler) broadcast(c *fiber.Ctx) error {
	var payload dto.BroadcastRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	response, err := h.service.Broadcast(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "broadcast links rendered", response)
}

func (h *MessageHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrStudentNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "student not found")
	case errors.Is(err, service.ErrLeadNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "lead not found")
	case errors.Is(err, service.ErrNoContactNumber):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "no contact number available")
	case errors.Is(err, service.ErrUnknownMessageKind):
		return utils.SendError(c, fiber.StatusBadRequest, "unknown message kind")
	default:
		requestLogger(h.logger, c).Error().Err(err).Msg("message request failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
