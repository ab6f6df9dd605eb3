package dto

// RegistrationRequest is the public, unauthenticated intake form. Validation
// is deliberately strict here because anyone can post it.
type RegistrationRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Course string `json:"course"`
	Notes  string `json:"notes"`
}

// RegistrationResponse returns the created lead id.
type RegistrationResponse struct {
	ID string `json:"id"`
}
