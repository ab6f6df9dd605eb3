package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student statuses.
const (
	StudentStatusActive   = "active"
	StudentStatusInactive = "inactive"
)

// Courses offered by the studio. Unknown values fall back to CourseBasic.
const (
	CourseBasic        = "Basic"
	CourseAdvanced     = "Advanced"
	CourseProfessional = "Professional"
)

// Batches lists the recurring class time-slots.
var Batches = []string{
	"Professional (10:00 AM - 11:30 AM)",
	"Advance + Basic (11:30 AM - 1:00 PM)",
	"Basic 1 (1:00 PM - 2:30 PM)",
	"Basic 2 (2:30 PM - 4:00 PM)",
}

// ValidCourse reports whether course is one of the offered courses.
func ValidCourse(course string) bool {
	switch course {
	case CourseBasic, CourseAdvanced, CourseProfessional:
		return true
	default:
		return false
	}
}

// Student represents an enrolled, paying customer of the academy.
//
// FeeAmount is the post-discount amount. DiscountPercent and DiscountAmount are
// mutually exclusive; the student service zeroes one when the other is set.
// Date fields use ISO YYYY-MM-DD strings so range checks compare lexically, the
// same way the stored rows do.
type Student struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	RollNumber      string    `gorm:"size:20;uniqueIndex;not null" json:"roll_number"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	DOB             string    `gorm:"size:10" json:"dob"`
	Course          string    `gorm:"size:50;not null" json:"course"`
	Batch           string    `gorm:"size:100;not null" json:"batch"`
	EnrollmentDate  string    `gorm:"size:10" json:"enrollment_date"`
	ValidityStart   string    `gorm:"size:10" json:"validity_start"`
	ValidityEnd     string    `gorm:"size:10" json:"validity_end"`
	TotalSessions   int       `gorm:"not null" json:"total_sessions"`
	FeeAmount       float64   `gorm:"not null" json:"fee_amount"`
	DiscountPercent float64   `json:"discount_percent"`
	DiscountAmount  float64   `json:"discount_amount"`
	Status          string    `gorm:"size:20;not null;default:active;index" json:"status"`
	WhatsApp        string    `gorm:"size:20" json:"whatsapp"`
	FatherContact   string    `gorm:"size:20" json:"father_contact"`
	MotherContact   string    `gorm:"size:20" json:"mother_contact"`
	Email           string    `gorm:"size:255" json:"email"`
	Address         string    `gorm:"size:500" json:"address"`
	PhotoURL        string    `gorm:"size:500" json:"photo_url"`
	Notes           string    `gorm:"size:500" json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (s *Student) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
