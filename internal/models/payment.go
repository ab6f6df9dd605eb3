package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment statuses.
const (
	PaymentPaid    = "paid"
	PaymentPending = "pending"
	PaymentPartial = "partial"
)

// ValidPaymentStatus reports whether status is a recognised payment state.
func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentPaid, PaymentPending, PaymentPartial:
		return true
	default:
		return false
	}
}

// Payment records one scheduled or settled installment for a student. For
// pending payments Date doubles as the due date.
type Payment struct {
	ID                string    `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID         string    `gorm:"type:uuid;not null;index" json:"student_id"`
	Amount            float64   `gorm:"not null" json:"amount"`
	Method            string    `gorm:"size:20" json:"method"`
	Date              string    `gorm:"size:10;not null" json:"date"`
	InstallmentNo     int       `gorm:"not null;default:1" json:"installment_no"`
	TotalInstallments int       `gorm:"not null;default:1" json:"total_installments"`
	Status            string    `gorm:"size:10;not null;default:paid;index" json:"status"`
	Notes             string    `gorm:"size:500" json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (p *Payment) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
