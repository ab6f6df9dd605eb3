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

// AttendanceHandler wires attendance HTTP routes.
type AttendanceHandler struct {
	service service.AttendanceService
	logger  zerolog.Logger
}

// NewAttendanceHandler constructs the handler.
func NewAttendanceHandler(service service.AttendanceService, logger zerolog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		service: service,
		logger:  logger.With().Str("component", "attendance_handler").Logger(),
	}
}

// Register attaches attendance endpoints to the router group.
func (h *AttendanceHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.mark)
	router.Post("/bulk", h.markAll)
	router.Delete("/:id", h.delete)
}

func (h *AttendanceHandler) list(c *fiber.Ctx) error {
	filter := repository.AttendanceFilter{
		StudentID: c.Query("student_id"),
		Date:      c.Query("date"),
		Batch:     c.Query("batch"),
	}

	records, err := h.service.List(c.Context(), filter)
	if err != nil {
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "attendance retrieved", records)
}

func (h *AttendanceHandler) mark(c *fiber.Ctx) error {
	var payload dto.AttendanceMarkRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	record, err := h.service.Mark(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "attendance marked", record)
}

func (h *AttendanceHandler) markAll(c *fiber.Ctx) error {
	var payload dto.AttendanceBulkRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	records, err := h.service.MarkAll(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "attendance marked", records)
}

func (h *AttendanceHandler) delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "attendance record deleted", nil)
}

func (h *AttendanceHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrStudentNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "student not found")
	default:
		return h.internalError(c, err)
	}
}

func (h *AttendanceHandler) internalError(c *fiber.Ctx, err error) error {
	requestLogger(h.logger, c).Error().Err(err).Msg("attendance request failed")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
