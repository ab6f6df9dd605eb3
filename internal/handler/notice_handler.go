package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/artneelam/studio-api/internal/dto"
	"github.com/artneelam/studio-api/internal/repository"
	"github.com/artneelam/studio-api/internal/service"
	"github.com/artneelam/studio-api/internal/utils"
)

// NoticeHandler wires notice board HTTP routes.
type NoticeHandler struct {
	service service.NoticeService
	logger  zerolog.Logger
}

// NewNoticeHandler constructs the handler.
func NewNoticeHandler(service service.NoticeService, logger zerolog.Logger) *NoticeHandler {
	return &NoticeHandler{
		service: service,
		logger:  logger.With().Str("component", "notice_handler").Logger(),
	}
}

// Register attaches notice endpoints to the router group.
func (h *NoticeHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Delete("/:id", h.delete)
}

func (h *NoticeHandler) list(c *fiber.Ctx) error {
	filter := repository.NoticeFilter{
		Audience: c.Query("audience"),
		Limit:    c.QueryInt("limit"),
	}

	notices, err := h.service.List(c.Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAudience) {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid notice audience")
		}
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "notices retrieved", notices)
}

func (h *NoticeHandler) create(c *fiber.Ctx) error {
	var payload dto.NoticeCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	notice, err := h.service.Create(c.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		return h.internalError(c, err)
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "notice posted", notice)
}

func (h *NoticeHandler) delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "notice deleted", nil)
}

func (h *NoticeHandler) internalError(c *fiber.Ctx, err error) error {
	requestLogger(h.logger, c).Error().Err(err).Msg("notice request failed")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
