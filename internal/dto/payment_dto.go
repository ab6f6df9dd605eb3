package dto

// PaymentCreateRequest records an installment. For pending payments Date is
// the due date.
type PaymentCreateRequest struct {
	StudentID         string  `json:"student_id" validate:"required,uuid4"`
	Amount            float64 `json:"amount" validate:"required,gt=0"`
	Method            string  `json:"method" validate:"omitempty,max=20"`
	Date              string  `json:"date" validate:"required,datetime=2006-01-02"`
	InstallmentNo     int     `json:"installment_no" validate:"min=1"`
	TotalInstallments int     `json:"total_installments" validate:"min=1"`
	Status            string  `json:"status" validate:"omitempty,oneof=paid pending partial"`
	Notes             string  `json:"notes" validate:"omitempty,max=500"`
}

// PaymentUpdateRequest edits an installment's settled state.
type PaymentUpdateRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Method string  `json:"method" validate:"omitempty,max=20"`
	Date   string  `json:"date" validate:"required,datetime=2006-01-02"`
	Status string  `json:"status" validate:"required,oneof=paid pending partial"`
	Notes  string  `json:"notes" validate:"omitempty,max=500"`
}
