package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/artneelam/studio-api/internal/dto"
	"github.com/artneelam/studio-api/internal/repository"
	"github.com/artneelam/studio-api/internal/service"
	"github.com/artneelam/studio-api/internal/utils"
)

// ExpenseHandler wires expense HTTP routes.
type ExpenseHandler struct {
	service service.ExpenseService
	logger  zerolog.Logger
}

// NewExpenseHandler constructs the handler.
func NewExpenseHandler(service service.ExpenseService, logger zerolog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		service: service,
		logger:  logger.With().Str("component", "expense_handler").Logger(),
	}
}

// Register attaches expense endpoints to the router group.
func (h *ExpenseHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Delete("/:id", h.delete)
}

func (h *ExpenseHandler) list(c *fiber.Ctx) error {
	filter := repository.ExpenseFilter{Category: c.Query("category")}

	expenses, err := h.service.List(c.Context(), filter)
	if err != nil {
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "expenses retrieved", expenses)
}

func (h *ExpenseHandler) create(c *fiber.Ctx) error {
	var payload dto.ExpenseCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	expense, err := h.service.Create(c.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		return h.internalError(c, err)
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "expense recorded", expense)
}

func (h *ExpenseHandler) delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "expense deleted", nil)
}

func (h *ExpenseHandler) internalError(c *fiber.Ctx, err error) error {
	requestLogger(h.logger, c).Error().Err(err).Msg("expense request failed")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
