package dto

// ExpenseCreateRequest records an outgoing cost.
type ExpenseCreateRequest struct {
	Category    string  `json:"category" validate:"required,max=50"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Method      string  `json:"method" validate:"omitempty,max=20"`
}

// ExpenseListResponse returns expenses alongside their per-category totals.
type ExpenseListResponse struct {
	Expenses       []ExpenseItem      `json:"expenses"`
	CategoryTotals map[string]float64 `json:"category_totals"`
	Total          float64            `json:"total"`
}

// ExpenseItem mirrors one expense row.
type ExpenseItem struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Method      string  `json:"method"`
}
