package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notice audiences.
const (
	AudienceAll     = "all"
	AudienceParents = "parents"
	AudienceAdmin   = "admin"
)

// ValidAudience reports whether audience names a known recipient group.
func ValidAudience(audience string) bool {
	switch audience {
	case AudienceAll, AudienceParents, AudienceAdmin:
		return true
	default:
		return false
	}
}

// Notice is a board announcement shown on the dashboard and parent portal.
type Notice struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Body      string    `gorm:"size:2000" json:"body"`
	Date      string    `gorm:"size:10;not null" json:"date"`
	Audience  string    `gorm:"size:10;not null;default:all" json:"audience"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (n *Notice) BeforeCreate(_ *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
