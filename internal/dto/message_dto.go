package dto

// MessageLink is one rendered composer link. Opening it is the caller's job;
// there is no delivery confirmation.
type MessageLink struct {
	StudentID string `json:"student_id,omitempty"`
	LeadID    string `json:"lead_id,omitempty"`
	Name      string `json:"name,omitempty"`
	Number    string `json:"number"`
	Link      string `json:"link"`
	Message   string `json:"message"`
}

// MessageRequest renders one template for one student.
type MessageRequest struct {
	StudentID string  `json:"student_id" validate:"required,uuid4"`
	Kind      string  `json:"kind" validate:"required,oneof=fee_reminder welcome birthday attendance_alert custom"`
	Date      string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status    string  `json:"status" validate:"omitempty,oneof=present absent late"`
	Amount    float64 `json:"amount" validate:"omitempty,min=0"`
}

// FollowUpRequest renders the demo-class nudge for one lead.
type FollowUpRequest struct {
	LeadID string `json:"lead_id" validate:"required"`
}

// BroadcastRequest renders a notice for every matching recipient. Each link is
// independent; a recipient without a reachable number is reported, not fatal.
type BroadcastRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Body     string `json:"body" validate:"omitempty,max=2000"`
	Audience string `json:"audience" validate:"omitempty,oneof=all parents admin"`
}

// BroadcastFailure reports one recipient that could not be resolved.
type BroadcastFailure struct {
	StudentID string `json:"student_id"`
	Reason    string `json:"reason"`
}

// BroadcastResponse carries the per-recipient links and failures.
type BroadcastResponse struct {
	Links    []MessageLink      `json:"links"`
	Failures []BroadcastFailure `json:"failures,omitempty"`
}
