package dto

import "github.com/artneelam/studio-api/internal/models"

// SettingsUpdateRequest saves the admin configuration record.
type SettingsUpdateRequest struct {
	WebhookURL string                     `json:"webhook_url" validate:"omitempty,url,max=500"`
	Toggles    models.NotificationToggles `json:"toggles"`
}
