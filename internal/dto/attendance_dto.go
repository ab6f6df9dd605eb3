package dto

// AttendanceMarkRequest records one mark for a student on a day. Marking the
// same day again replaces the earlier status.
type AttendanceMarkRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid4"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required,oneof=present absent late"`
	Batch     string `json:"batch" validate:"omitempty,max=100"`
}

// AttendanceBulkRequest marks every listed student with the same status, the
// "mark all" action on the attendance sheet.
type AttendanceBulkRequest struct {
	StudentIDs []string `json:"student_ids" validate:"required,min=1,dive,uuid4"`
	Date       string   `json:"date" validate:"required,datetime=2006-01-02"`
	Status     string   `json:"status" validate:"required,oneof=present absent late"`
	Batch      string   `json:"batch" validate:"omitempty,max=100"`
}
