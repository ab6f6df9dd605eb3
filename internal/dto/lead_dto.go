package dto

// LeadCreateRequest captures a manually entered lead.
type LeadCreateRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Phone        string `json:"phone" validate:"omitempty,max=20"`
	Email        string `json:"email" validate:"omitempty,email"`
	Course       string `json:"course" validate:"omitempty,max=50"`
	Source       string `json:"source" validate:"omitempty,max=50"`
	FollowUpDate string `json:"follow_up_date" validate:"omitempty,datetime=2006-01-02"`
	Notes        string `json:"notes" validate:"omitempty,max=500"`
}

// LeadUpdateRequest carries editable lead fields.
type LeadUpdateRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Phone        string `json:"phone" validate:"omitempty,max=20"`
	Email        string `json:"email" validate:"omitempty,email"`
	Course       string `json:"course" validate:"omitempty,max=50"`
	Source       string `json:"source" validate:"omitempty,max=50"`
	FollowUpDate string `json:"follow_up_date" validate:"omitempty,datetime=2006-01-02"`
	Notes        string `json:"notes" validate:"omitempty,max=500"`
}

// LeadMoveRequest moves a lead to another pipeline column.
type LeadMoveRequest struct {
	Status string `json:"status" validate:"required"`
}

// LeadIngestRequest is the server-to-server lead intake payload.
type LeadIngestRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Course string `json:"course"`
	Source string `json:"source"`
	Notes  string `json:"notes"`
}

// ConvertPrefill is the transient draft carried from a lead into the student
// registration form. No persisted link between the two records exists.
type ConvertPrefill struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	Course   string `json:"course"`
	Notes    string `json:"notes"`
	Source   string `json:"source"`
}

// ScoredLead pairs a lead id with the model's hint score.
type ScoredLead struct {
	ID     string `json:"id"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}
