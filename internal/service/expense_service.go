package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/artneelam/studio-api/internal/dto"
	"github.com/artneelam/studio-api/internal/metrics"
	"github.com/artneelam/studio-api/internal/models"
	"github.com/artneelam/studio-api/internal/repository"
)

// ExpenseService records studio costs. Expenses are standalone; nothing links
// them to students or payments.
type ExpenseService interface {
	List(ctx context.Context, filter repository.ExpenseFilter) (dto.ExpenseListResponse, error)
	Create(ctx context.Context, req dto.ExpenseCreateRequest) (models.Expense, error)
	Delete(ctx context.Context, id string) error
}

type expenseService struct {
	expenses repository.ExpenseRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewExpenseService builds the expense service.
func NewExpenseService(expenses repository.ExpenseRepository, validate *validator.Validate, logger zerolog.Logger) ExpenseService {
	return &expenseService{
		expenses: expenses,
		validate: validate,
		logger:   logger.With().Str("component", "expense_service").Logger(),
	}
}

func (s *expenseService) List(ctx context.Context, filter repository.ExpenseFilter) (dto.ExpenseListResponse, error) {
	expenses, err := s.expenses.List(ctx, filter)
	if err != nil {
		return dto.ExpenseListResponse{}, err
	}

	items := make([]dto.ExpenseItem, 0, len(expenses))
	total := 0.0
	for _, expense := range expenses {
		items = append(items, dto.ExpenseItem{
			ID:          expense.ID,
			Category:    expense.Category,
			Description: expense.Description,
			Amount:      expense.Amount,
			Date:        expense.Date,
			Method:      expense.Method,
		})
		total += expense.Amount
	}

	return dto.ExpenseListResponse{
		Expenses:       items,
		CategoryTotals: metrics.ExpenseCategoryTotals(expenses),
		Total:          total,
	}, nil
}

func (s *expenseService) Create(ctx context.Context, req dto.ExpenseCreateRequest) (models.Expense, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Expense{}, err
	}

	expense := models.Expense{
		Category:    models.NormalizeExpenseCategory(req.Category),
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		Method:      req.Method,
	}
	if err := s.expenses.Create(ctx, &expense); err != nil {
		return models.Expense{}, err
	}
	return expense, nil
}

func (s *expenseService) Delete(ctx context.Context, id string) error {
	return s.expenses.Delete(ctx, id)
}
