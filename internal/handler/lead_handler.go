package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/artneelam/studio-api/internal/dto"
	"github.com/artneelam/studio-api/internal/repository"
	"github.com/artneelam/studio-api/internal/service"
	"github.com/artneelam/studio-api/internal/utils"
	"github.com/artneelam/studio-api/pkg/scoring"
)

// LeadHandler wires lead pipeline HTTP routes.
type LeadHandler struct {
	service service.LeadService
	logger  zerolog.Logger
}

// NewLeadHandler constructs the handler.
func NewLeadHandler(service service.LeadService, logger zerolog.Logger) *LeadHandler {
	return &LeadHandler{
		service: service,
		logger:  logger.With().Str("component", "lead_handler").Logger(),
	}
}

// Register attaches lead endpoints to the router group.
func (h *LeadHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Post("/score", h.score)
	router.Get("/:id", h.get)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
	router.Patch("/:id/move", h.move)
	router.Post("/:id/convert", h.convert)
}

func (h *LeadHandler) list(c *fiber.Ctx) error {
	filter := repository.LeadFilter{
		Status: c.Query("status"),
		Source: c.Query("source"),
	}

	leads, err := h.service.List(c.Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLeadStatus) {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid lead status")
		}
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "leads retrieved", leads)
}

func (h *LeadHandler) get(c *fiber.Ctx) error {
	lead, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "lead retrieved", lead)
}

func (h *LeadHandler) create(c *fiber.Ctx) error {
	var payload dto.LeadCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	lead, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "lead created", lead)
}

func (h *LeadHandler) update(c *fiber.Ctx) error {
	var payload dto.LeadUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	lead, err := h.service.Update(c.Context(), c.Params("id"), payload)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "lead updated", lead)
}

func (h *LeadHandler) move(c *fiber.Ctx) error {
	var payload dto.LeadMoveRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	lead, err := h.service.Move(c.Context(), c.Params("id"), payload.Status)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "lead moved", lead)
}

func (h *LeadHandler) convert(c *fiber.Ctx) error {
	prefill, err := h.service.Convert(c.Context(), c.Params("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "lead converted", prefill)
}

func (h *LeadHandler) delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "lead deleted", nil)
}

func (h *LeadHandler) score(c *fiber.Ctx) error {
	scores, err := h.service.Score(c.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScoringDisabled):
			return utils.SendError(c, fiber.StatusServiceUnavailable, "lead scoring is not configured")
		case errors.Is(err, scoring.ErrRateLimited):
			return utils.SendError(c, fiber.StatusTooManyRequests, "scoring rate limit exceeded, try again shortly")
		case errors.Is(err, scoring.ErrQuotaExhausted):
			return utils.SendError(c, fiber.StatusPaymentRequired, "scoring credits exhausted")
		case errors.Is(err, scoring.ErrUnavailable):
			return utils.SendError(c, fiber.StatusServiceUnavailable, "scoring is temporarily unavailable")
		default:
			return h.internalError(c, err)
		}
	}
	return utils.SendSuccess(c, "leads scored", scores)
}

func (h *LeadHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrLeadNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "lead not found")
	case errors.Is(err, service.ErrInvalidLeadStatus):
		return utils.SendError(c, fiber.StatusBadRequest, "invalid lead status")
	default:
		return h.internalError(c, err)
	}
}

func (h *LeadHandler) internalError(c *fiber.Ctx, err error) error {
	requestLogger(h.logger, c).Error().Err(err).Msg("lead request failed")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
