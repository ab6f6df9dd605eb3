package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/artneelam/studio-api/internal/dto"
	"github.com/artneelam/studio-api/internal/metrics"
	"github.com/artneelam/studio-api/internal/models"
	"github.com/artneelam/studio-api/internal/repository"
	"github.com/artneelam/studio-api/pkg/whatsapp"
)

var (
	// ErrNoContactNumber indicates a student with no reachable WhatsApp number.
	ErrNoContactNumber = errors.New("student has no contact number")
	// ErrUnknownMessageKind indicates an unrecognised template name.
	ErrUnknownMessageKind = errors.New("unknown message kind")
)

// MessageService renders wa.me composer links. Opening the link is the
// admin's job; the service never sends anything itself and there is no
// delivery confirmation.
type MessageService interface {
	Compose(ctx context.Context, req dto.MessageRequest) (dto.MessageLink, error)
	FollowUp(ctx context.Context, req dto.FollowUpRequest) (dto.MessageLink, error)
	Broadcast(ctx context.Context, req dto.BroadcastRequest) (dto.BroadcastResponse, error)
}

type messageService struct {
	students    repository.StudentRepository
	payments    repository.PaymentRepository
	leads       repository.LeadRepository
	validate    *validator.Validate
	countryCode string
	adminNumber string
	logger      zerolog.Logger
}

// NewMessageService builds the composer-link service.
func NewMessageService(students repository.StudentRepository, payments repository.PaymentRepository, leads repository.LeadRepository, validate *validator.Validate, countryCode, adminNumber string, logger zerolog.Logger) MessageService {
	if countryCode == "" {
		countryCode = whatsapp.DefaultCountryCode
	}
	return &messageService{
		students:    students,
		payments:    payments,
		leads:       leads,
		validate:    validate,
		countryCode: countryCode,
		adminNumber: adminNumber,
		logger:      logger.With().Str("component", "message_service").Logger(),
	}
}

func (s *messageService) Compose(ctx context.Context, req dto.MessageRequest) (dto.MessageLink, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.MessageLink{}, err
	}

	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		return dto.MessageLink{}, ErrStudentNotFound
	}

	number := contactNumber(student)
	if number == "" {
		return dto.MessageLink{}, ErrNoContactNumber
	}

	message, err := s.renderTemplate(ctx, student, req)
	if err != nil {
		return dto.MessageLink{}, err
	}

	normalized := whatsapp.Normalize(number, s.countryCode)
	return dto.MessageLink{
		StudentID: student.ID,
		Name:      student.Name,
		Number:    normalized,
		Link:      whatsapp.ComposerURL(normalized, message),
		Message:   message,
	}, nil
}

func (s *messageService) renderTemplate(ctx context.Context, student models.Student, req dto.MessageRequest) (string, error) {
	switch req.Kind {
	case "fee_reminder":
		amount := req.Amount
		if amount <= 0 {
			payments, err := s.payments.List(ctx, repository.PaymentFilter{StudentID: student.ID})
			if err != nil {
				return "", err
			}
			amount = metrics.TotalPending(payments)
		}
		return whatsapp.FeeReminder(student.Name, amount, req.Date), nil
	case "welcome":
		return whatsapp.WelcomeStudent(student.Name, student.Course, student.Batch), nil
	case "birthday":
		return whatsapp.BirthdayWish(student.Name), nil
	case "attendance_alert":
		return whatsapp.AttendanceAlert(student.Name, req.Date, req.Status), nil
	case "custom":
		return whatsapp.CustomPrefix(student.Name), nil
	default:
		return "", ErrUnknownMessageKind
	}
}

// FollowUp renders the demo-class nudge for a lead still in the pipeline.
func (s *messageService) FollowUp(ctx context.Context, req dto.FollowUpRequest) (dto.MessageLink, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.MessageLink{}, err
	}

	lead, err := s.leads.GetByID(ctx, req.LeadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.MessageLink{}, ErrLeadNotFound
		}
		return dto.MessageLink{}, err
	}

	if lead.Phone == "" {
		return dto.MessageLink{}, ErrNoContactNumber
	}

	course := lead.Course
	if !models.ValidCourse(course) {
		course = models.CourseBasic
	}

	message := whatsapp.FollowUp(lead.Name, course)
	normalized := whatsapp.Normalize(lead.Phone, s.countryCode)
	return dto.MessageLink{
		LeadID:  lead.ID,
		Name:    lead.Name,
		Number:  normalized,
		Link:    whatsapp.ComposerURL(normalized, message),
		Message: message,
	}, nil
}

// Broadcast renders one notice link per recipient. Recipients without a
// reachable number are reported as failures and do not block the others.
func (s *messageService) Broadcast(ctx context.Context, req dto.BroadcastRequest) (dto.BroadcastResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.BroadcastResponse{}, err
	}

	audience := req.Audience
	if audience == "" {
		audience = models.AudienceAll
	}

	message := whatsapp.NoticeBroadcast(req.Title, req.Body)
	response := dto.BroadcastResponse{Links: []dto.MessageLink{}}

	if audience == models.AudienceAdmin {
		if s.adminNumber == "" {
			return dto.BroadcastResponse{}, ErrNoContactNumber
		}
		normalized := whatsapp.Normalize(s.adminNumber, s.countryCode)
		response.Links = append(response.Links, dto.MessageLink{
			Number:  normalized,
			Link:    whatsapp.ComposerURL(normalized, message),
			Message: message,
		})
		return response, nil
	}

	students, err := s.students.List(ctx, repository.StudentFilter{Status: models.StudentStatusActive})
	if err != nil {
		return dto.BroadcastResponse{}, err
	}

	for _, student := range students {
		number := contactNumber(student)
		if number == "" {
			response.Failures = append(response.Failures, dto.BroadcastFailure{
				StudentID: student.ID,
				Reason:    fmt.Sprintf("%s has no contact number", student.Name),
			})
			continue
		}
		normalized := whatsapp.Normalize(number, s.countryCode)
		response.Links = append(response.Links, dto.MessageLink{
			StudentID: student.ID,
			Name:      student.Name,
			Number:    normalized,
			Link:      whatsapp.ComposerURL(normalized, message),
			Message:   message,
		})
	}

	s.logger.Info().Int("links", len(response.Links)).Int("failures", len(response.Failures)).Msg("broadcast links rendered")
	return response, nil
}

// contactNumber picks the student's own number first, then the parents'.
func contactNumber(student models.Student) string {
	for _, candidate := range []string{student.WhatsApp, student.FatherContact, student.MotherContact} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}
