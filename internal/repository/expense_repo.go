package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/artneelam/studio-api/internal/models"
)

// ExpenseFilter narrows expense listings.
type ExpenseFilter struct {
	Category string
}

// ExpenseRepository provides access to expense records.
type ExpenseRepository interface {
	List(ctx context.Context, filter ExpenseFilter) ([]models.Expense, error)
	Create(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, id string) error
}

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository constructs an expense repository.
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) List(ctx context.Context, filter ExpenseFilter) ([]models.Expense, error) {
	query := r.db.WithContext(ctx).Model(&models.Expense{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var expenses []models.Expense
	if err := query.Order("date DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Expense{}, "id = ?", id).Error
}
