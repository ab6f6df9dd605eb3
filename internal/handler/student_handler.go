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

// StudentHandler wires student HTTP routes.
type StudentHandler struct {
	service service.StudentService
	photos  service.PhotoService
	logger  zerolog.Logger
}

// NewStudentHandler constructs the handler.
func NewStudentHandler(service service.StudentService, photos service.PhotoService, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		service: service,
		photos:  photos,
		logger:  logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register attaches student endpoints to the router group.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Get("/:id", h.get)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
	router.Get("/:id/summary", h.summary)
	router.Post("/:id/photo", h.uploadPhoto)
}

func (h *StudentHandler) list(c *fiber.Ctx) error {
	filter := repository.StudentFilter{
		Status: c.Query("status"),
		Batch:  c.Query("batch"),
		Course: c.Query("course"),
	}

	students, err := h.service.List(c.Context(), filter)
	if err != nil {
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "students retrieved", students)
}

func (h *StudentHandler) get(c *fiber.Ctx) error {
	student, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "student retrieved", student)
}

func (h *StudentHandler) create(c *fiber.Ctx) error {
	var payload dto.StudentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	student, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "student enrolled", student)
}

func (h *StudentHandler) update(c *fiber.Ctx) error {
	var payload dto.StudentUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	student, err := h.service.Update(c.Context(), c.Params("id"), payload)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "student updated", student)
}

func (h *StudentHandler) delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "student deleted", nil)
}

func (h *StudentHandler) summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.Context(), c.Params("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "student summary retrieved", summary)
}

func (h *StudentHandler) uploadPhoto(c *fiber.Ctx) error {
	file, err := c.FormFile("photo")
	if err != nil {
		file = nil
	}

	student, err := h.photos.Upload(c.Context(), c.Params("id"), file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPhotoRequired):
			return utils.SendError(c, fiber.StatusBadRequest, "photo file is required")
		case errors.Is(err, service.ErrPhotoTooLarge):
			return utils.SendError(c, fiber.StatusRequestEntityTooLarge, "photo exceeds the maximum allowed size")
		case errors.Is(err, service.ErrPhotoTypeNotAllowed):
			return utils.SendError(c, fiber.StatusUnsupportedMediaType, "photo must be a jpeg, png or webp image")
		case errors.Is(err, service.ErrPhotoStorageDisabled):
			return utils.SendError(c, fiber.StatusServiceUnavailable, "photo storage is not configured")
		default:
			return h.handleError(c, err)
		}
	}
	return utils.SendSuccess(c, "photo uploaded", student)
}

func (h *StudentHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrStudentNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "student not found")
	case errors.Is(err, service.ErrInvalidBatch):
		return utils.SendError(c, fiber.StatusBadRequest, "invalid batch")
	default:
		return h.internalError(c, err)
	}
}

func (h *StudentHandler) internalError(c *fiber.Ctx, err error) error {
	requestLogger(h.logger, c).Error().Err(err).Msg("student request failed")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
