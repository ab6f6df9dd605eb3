package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationToggles holds the outbound-message switches the admin can flip.
type NotificationToggles struct {
	EmailNotifications bool `json:"email_notifications"`
	WhatsAppAlerts     bool `json:"whatsapp_alerts"`
	AutoFollowUp       bool `json:"auto_follow_up"`
	BirthdayReminders  bool `json:"birthday_reminders"`
	FeeReminders       bool `json:"fee_reminders"`
}

// DefaultToggles mirrors the switches the studio starts with.
func DefaultToggles() NotificationToggles {
	return NotificationToggles{
		EmailNotifications: true,
		WhatsAppAlerts:     true,
		BirthdayReminders:  true,
		FeeReminders:       true,
	}
}

// Settings is a singleton configuration row. The original kept these values in
// view-local state; persisting them makes the toggles survive navigation.
type Settings struct {
	ID         string                                  `gorm:"type:uuid;primaryKey" json:"id"`
	WebhookURL string                                  `gorm:"size:500" json:"webhook_url"`
	Toggles    datatypes.JSONType[NotificationToggles] `json:"toggles"`
	CreatedAt  time.Time                               `json:"created_at"`
	UpdatedAt  time.Time                               `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (s *Settings) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
