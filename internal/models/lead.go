package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead pipeline statuses. The board is deliberately permissive: any status may
// move to any other, including out of converted.
const (
	LeadStatusNew           = "new"
	LeadStatusContacted     = "contacted"
	LeadStatusDemo          = "demo"
	LeadStatusConverted     = "converted"
	LeadStatusNotInterested = "not-interested"
)

// ValidLeadStatus reports whether status names a known pipeline column.
func ValidLeadStatus(status string) bool {
	switch status {
	case LeadStatusNew, LeadStatusContacted, LeadStatusDemo, LeadStatusConverted, LeadStatusNotInterested:
		return true
	default:
		return false
	}
}

// Lead represents a prospective customer captured before enrollment.
type Lead struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Phone        string    `gorm:"size:20;index" json:"phone"`
	Email        string    `gorm:"size:255" json:"email"`
	Course       string    `gorm:"size:50" json:"course"`
	Status       string    `gorm:"size:20;not null;default:new;index" json:"status"`
	Source       string    `gorm:"size:50" json:"source"`
	FollowUpDate string    `gorm:"size:10" json:"follow_up_date"`
	Notes        string    `gorm:"size:500" json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (l *Lead) BeforeCreate(_ *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
