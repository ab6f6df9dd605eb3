package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// ValidAttendanceStatus reports whether status is a recognised mark.
func ValidAttendanceStatus(status string) bool {
	switch status {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	default:
		return false
	}
}

// AttendanceRecord stores one mark per student per day. Writes are upserts on
// (student_id, date).
type AttendanceRecord struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID string    `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_student_date" json:"student_id"`
	Date      string    `gorm:"size:10;not null;uniqueIndex:idx_attendance_student_date" json:"date"`
	Status    string    `gorm:"size:10;not null" json:"status"`
	Batch     string    `gorm:"size:100" json:"batch"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (a *AttendanceRecord) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
