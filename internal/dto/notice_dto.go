package dto

// NoticeCreateRequest posts a board notice.
type NoticeCreateRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Body     string `json:"body" validate:"omitempty,max=2000"`
	Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Audience string `json:"audience" validate:"omitempty,oneof=all parents admin"`
}
