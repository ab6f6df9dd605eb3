package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/artneelam/studio-api/internal/models"
	"github.com/artneelam/studio-api/internal/repository"
	"github.com/artneelam/studio-api/internal/service"
	"github.com/artneelam/studio-api/internal/utils"
)

// PortalHandler wires the read-only parent portal routes. Parent tokens carry
// a student_id claim and may only read their own child's data.
type PortalHandler struct {
	students service.StudentService
	notices  service.NoticeService
	logger   zerolog.Logger
}

// NewPortalHandler constructs the handler.
func NewPortalHandler(students service.StudentService, notices service.NoticeService, logger zerolog.Logger) *PortalHandler {
	return &PortalHandler{
		students: students,
		notices:  notices,
		logger:   logger.With().Str("component", "portal_handler").Logger(),
	}
}

// Register attaches portal endpoints to the router group.
func (h *PortalHandler) Register(router fiber.Router) {
	router.Get("/students/:id/summary", h.summary)
	router.Get("/notices", h.listNotices)
}

func (h *PortalHandler) summary(c *fiber.Ctx) error {
	id := c.Params("id")
	if userRoleFromContext(c) != "admin" && studentIDFromContext(c) != id {
		return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
	}

	summary, err := h.students.Summary(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "student not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("portal summary failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
	return utils.SendSuccess(c, "student summary retrieved", summary)
}

func (h *PortalHandler) listNotices(c *fiber.Ctx) error {
	notices, err := h.notices.List(c.Context(), repository.NoticeFilter{Audience: models.AudienceParents})
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("portal notices failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
	return utils.SendSuccess(c, "notices retrieved", notices)
}
