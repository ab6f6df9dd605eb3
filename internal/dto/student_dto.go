package dto

import (
	"github.com/artneelam/studio-api/internal/metrics"
	"github.com/artneelam/studio-api/internal/models"
)

// StudentCreateRequest registers a new student, either manually or from a lead
// conversion prefill. ValidityEnd may be supplied to override the derived end
// date.
type StudentCreateRequest struct {
	Name            string  `json:"name" validate:"required,min=2,max=100"`
	DOB             string  `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Course          string  `json:"course" validate:"omitempty,max=50"`
	Batch           string  `json:"batch" validate:"required,max=100"`
	EnrollmentDate  string  `json:"enrollment_date" validate:"omitempty,datetime=2006-01-02"`
	ValidityStart   string  `json:"validity_start" validate:"omitempty,datetime=2006-01-02"`
	ValidityEnd     string  `json:"validity_end" validate:"omitempty,datetime=2006-01-02"`
	TotalSessions   int     `json:"total_sessions" validate:"min=0"`
	FeeAmount       float64 `json:"fee_amount" validate:"min=0"`
	DiscountPercent float64 `json:"discount_percent" validate:"min=0,max=100"`
	DiscountAmount  float64 `json:"discount_amount" validate:"min=0"`
	WhatsApp        string  `json:"whatsapp" validate:"omitempty,max=20"`
	FatherContact   string  `json:"father_contact" validate:"omitempty,max=20"`
	MotherContact   string  `json:"mother_contact" validate:"omitempty,max=20"`
	Email           string  `json:"email" validate:"omitempty,email"`
	Address         string  `json:"address" validate:"omitempty,max=500"`
	Notes           string  `json:"notes" validate:"omitempty,max=500"`
}

// StudentUpdateRequest carries editable student fields.
type StudentUpdateRequest struct {
	Name            string  `json:"name" validate:"required,min=2,max=100"`
	DOB             string  `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Course          string  `json:"course" validate:"omitempty,max=50"`
	Batch           string  `json:"batch" validate:"required,max=100"`
	EnrollmentDate  string  `json:"enrollment_date" validate:"omitempty,datetime=2006-01-02"`
	ValidityStart   string  `json:"validity_start" validate:"omitempty,datetime=2006-01-02"`
	ValidityEnd     string  `json:"validity_end" validate:"omitempty,datetime=2006-01-02"`
	TotalSessions   int     `json:"total_sessions" validate:"min=0"`
	FeeAmount       float64 `json:"fee_amount" validate:"min=0"`
	DiscountPercent float64 `json:"discount_percent" validate:"min=0,max=100"`
	DiscountAmount  float64 `json:"discount_amount" validate:"min=0"`
	Status          string  `json:"status" validate:"omitempty,oneof=active inactive"`
	WhatsApp        string  `json:"whatsapp" validate:"omitempty,max=20"`
	FatherContact   string  `json:"father_contact" validate:"omitempty,max=20"`
	MotherContact   string  `json:"mother_contact" validate:"omitempty,max=20"`
	Email           string  `json:"email" validate:"omitempty,email"`
	Address         string  `json:"address" validate:"omitempty,max=500"`
	Notes           string  `json:"notes" validate:"omitempty,max=500"`
}

// StudentSummaryResponse is the per-student profile view: the row plus every
// derived number the profile and parent portal render.
type StudentSummaryResponse struct {
	Student             models.Student            `json:"student"`
	Attendance          metrics.AttendanceSummary `json:"attendance"`
	SessionsAttended    int                       `json:"sessions_attended"`
	SessionsRemaining   int                       `json:"sessions_remaining"`
	CertificateEligible bool                      `json:"certificate_eligible"`
	TotalPaid           float64                   `json:"total_paid"`
	TotalPending        float64                   `json:"total_pending"`
	FeeProgress         int                       `json:"fee_progress"`
	FeeProgressBar      int                       `json:"fee_progress_bar"`
	ValidityDaysLeft    int                       `json:"validity_days_left"`
	NextDue             *models.Payment           `json:"next_due,omitempty"`
}
