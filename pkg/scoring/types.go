package scoring

import (
	"context"
	"errors"
)

// Upstream failure classes. Callers map these to HTTP statuses; none of them
// may corrupt the lead list — a failed scoring run simply yields no scores.
var (
	// ErrRateLimited indicates the gateway rejected the call for rate reasons.
	ErrRateLimited = errors.New("scoring rate limit exceeded")
	// ErrQuotaExhausted indicates the gateway account has no credits left.
	ErrQuotaExhausted = errors.New("scoring credits exhausted")
	// ErrUnavailable covers transport failures and malformed replies.
	ErrUnavailable = errors.New("scoring unavailable")
)

// LeadSummary is the slice of a lead the scorer sees.
type LeadSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	Course       string `json:"course"`
	Source       string `json:"source"`
	Notes        string `json:"notes"`
	FollowUpDate string `json:"follow_up_date"`
	CreatedAt    string `json:"created_at"`
}

// LeadScore is one scored lead. Scores are a hint ranking, not ground truth:
// the model may skip leads and is not stable across calls.
type LeadScore struct {
	ID     string `json:"id"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// LeadScorer describes an external model capable of ranking leads by
// conversion likelihood.
type LeadScorer interface {
	Score(ctx context.Context, leads []LeadSummary) ([]LeadScore, error)
}
