package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpenseCategories lists the known expense buckets. Unknown categories are
// recorded under "Other".
var ExpenseCategories = []string{
	"Art Supplies", "Utilities", "Rent", "Marketing", "Maintenance", "Salaries", "Equipment", "Other",
}

// NormalizeExpenseCategory maps unknown categories to the "Other" fallback.
func NormalizeExpenseCategory(category string) string {
	for _, known := range ExpenseCategories {
		if category == known {
			return category
		}
	}
	return "Other"
}

// Expense is a standalone outgoing cost with no link to other entities.
type Expense struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Category    string    `gorm:"size:50;not null" json:"category"`
	Description string    `gorm:"size:500" json:"description"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Date        string    `gorm:"size:10;not null" json:"date"`
	Method      string    `gorm:"size:20" json:"method"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (e *Expense) BeforeCreate(_ *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
