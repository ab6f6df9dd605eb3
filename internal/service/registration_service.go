package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/artneelam/studio-api/internal/dto"
	"github.com/artneelam/studio-api/internal/models"
	"github.com/artneelam/studio-api/internal/observability"
	"github.com/artneelam/studio-api/internal/repository"
)

var (
	// ErrInvalidRegistration wraps field-level intake validation failures.
	ErrInvalidRegistration = errors.New("invalid registration")
	// ErrDuplicateRegistration indicates the same phone registered within 24 hours.
	ErrDuplicateRegistration = errors.New("a registration for this phone number was received recently")
)

var (
	indianMobilePattern = regexp.MustCompile(`^(\+91)?[6-9]\d{9}$`)
	emailPattern        = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneStripper       = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

const (
	registrationNotesLimit = 500
	duplicateWindow        = 24 * time.Hour
)

// RegistrationService handles the public intake form. It is the only write
// surface reachable without credentials, so it validates harder than the admin
// endpoints and throttles repeat submissions per phone number.
type RegistrationService interface {
	Register(ctx context.Context, req dto.RegistrationRequest) (models.Lead, error)
}

type registrationService struct {
	leads  repository.LeadRepository
	logger zerolog.Logger
	now    func() time.Time
}

// NewRegistrationService builds the public registration service.
func NewRegistrationService(leads repository.LeadRepository, logger zerolog.Logger) RegistrationService {
	return &registrationService{
		leads:  leads,
		logger: logger.With().Str("component", "registration_service").Logger(),
		now:    time.Now,
	}
}

func (s *registrationService) Register(ctx context.Context, req dto.RegistrationRequest) (models.Lead, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) < 2 || len(name) > 100 {
		observability.Registrations().WithLabelValues("invalid").Inc()
		return models.Lead{}, fmt.Errorf("%w: name must be between 2 and 100 characters", ErrInvalidRegistration)
	}

	phone := phoneStripper.Replace(strings.TrimSpace(req.Phone))
	if !indianMobilePattern.MatchString(phone) {
		observability.Registrations().WithLabelValues("invalid").Inc()
		return models.Lead{}, fmt.Errorf("%w: phone must be a valid Indian mobile number", ErrInvalidRegistration)
	}

	email := strings.TrimSpace(req.Email)
	if email != "" && !emailPattern.MatchString(email) {
		observability.Registrations().WithLabelValues("invalid").Inc()
		return models.Lead{}, fmt.Errorf("%w: email address is not valid", ErrInvalidRegistration)
	}

	course := strings.TrimSpace(req.Course)
	if !models.ValidCourse(course) {
		course = models.CourseBasic
	}

	notes := strings.TrimSpace(req.Notes)
	if len(notes) > registrationNotesLimit {
		notes = notes[:registrationNotesLimit]
	}

	// Duplicates are matched on the bare number so "+919876543210" and
	// "9876543210" count as the same submitter.
	normalized := strings.TrimPrefix(phone, "+91")
	since := s.now().Add(-duplicateWindow)
	recent, err := s.leads.CountRecentByPhone(ctx, normalized, since)
	if err != nil {
		return models.Lead{}, err
	}
	if recent > 0 {
		observability.Registrations().WithLabelValues("duplicate").Inc()
		return models.Lead{}, ErrDuplicateRegistration
	}

	lead := models.Lead{
		Name:   name,
		Phone:  normalized,
		Email:  email,
		Course: course,
		Status: models.LeadStatusNew,
		Source: "registration",
		Notes:  notes,
	}
	if err := s.leads.Create(ctx, &lead); err != nil {
		return models.Lead{}, err
	}

	observability.Registrations().WithLabelValues("accepted").Inc()
	s.logger.Info().Str("lead_id", lead.ID).Msg("public registration received")
	return lead, nil
}
