package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/artneelam/studio-api/internal/dto"
	"github.com/artneelam/studio-api/internal/models"
	"github.com/artneelam/studio-api/internal/repository"
	"github.com/artneelam/studio-api/pkg/scoring"
)

var (
	// ErrLeadNotFound indicates the requested lead does not exist.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrInvalidLeadStatus indicates an unknown pipeline column.
	ErrInvalidLeadStatus = errors.New("invalid lead status")
	// ErrLeadNameRequired indicates an intake payload without a usable name.
	ErrLeadNameRequired = errors.New("lead name is required")
	// ErrScoringDisabled indicates no scoring gateway is configured.
	ErrScoringDisabled = errors.New("lead scoring is not configured")
)

// LeadService manages the lead pipeline board.
type LeadService interface {
	List(ctx context.Context, filter repository.LeadFilter) ([]models.Lead, error)
	Get(ctx context.Context, id string) (models.Lead, error)
	Create(ctx context.Context, req dto.LeadCreateRequest) (models.Lead, error)
	Update(ctx context.Context, id string, req dto.LeadUpdateRequest) (models.Lead, error)
	Move(ctx context.Context, id, status string) (models.Lead, error)
	Convert(ctx context.Context, id string) (dto.ConvertPrefill, error)
	Delete(ctx context.Context, id string) error
	Ingest(ctx context.Context, req dto.LeadIngestRequest) (models.Lead, error)
	Score(ctx context.Context) ([]dto.ScoredLead, error)
}

type leadService struct {
	repo     repository.LeadRepository
	scorer   scoring.LeadScorer
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewLeadService builds the lead pipeline service. scorer may be nil when no
// gateway is configured; scoring then reports itself as disabled.
func NewLeadService(repo repository.LeadRepository, scorer scoring.LeadScorer, validate *validator.Validate, logger zerolog.Logger) LeadService {
	return &leadService{
		repo:     repo,
		scorer:   scorer,
		validate: validate,
		logger:   logger.With().Str("component", "lead_service").Logger(),
	}
}

func (s *leadService) List(ctx context.Context, filter repository.LeadFilter) ([]models.Lead, error) {
	if filter.Status != "" && !models.ValidLeadStatus(filter.Status) {
		return nil, ErrInvalidLeadStatus
	}
	return s.repo.List(ctx, filter)
}

func (s *leadService) Get(ctx context.Context, id string) (models.Lead, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Lead{}, ErrLeadNotFound
		}
		return models.Lead{}, err
	}
	return lead, nil
}

func (s *leadService) Create(ctx context.Context, req dto.LeadCreateRequest) (models.Lead, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Lead{}, err
	}

	lead := models.Lead{
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.TrimSpace(req.Email),
		Course:       strings.TrimSpace(req.Course),
		Status:       models.LeadStatusNew,
		Source:       strings.TrimSpace(req.Source),
		FollowUpDate: req.FollowUpDate,
		Notes:        req.Notes,
	}
	if lead.Source == "" {
		lead.Source = "manual"
	}

	if err := s.repo.Create(ctx, &lead); err != nil {
		return models.Lead{}, err
	}

	s.logger.Info().Str("lead_id", lead.ID).Str("source", lead.Source).Msg("lead created")
	return lead, nil
}

func (s *leadService) Update(ctx context.Context, id string, req dto.LeadUpdateRequest) (models.Lead, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Lead{}, err
	}

	lead, err := s.Get(ctx, id)
	if err != nil {
		return models.Lead{}, err
	}

	lead.Name = strings.TrimSpace(req.Name)
	lead.Phone = strings.TrimSpace(req.Phone)
	lead.Email = strings.TrimSpace(req.Email)
	lead.Course = strings.TrimSpace(req.Course)
	lead.Source = strings.TrimSpace(req.Source)
	lead.FollowUpDate = req.FollowUpDate
	lead.Notes = req.Notes

	if err := s.repo.Update(ctx, &lead); err != nil {
		return models.Lead{}, err
	}
	return lead, nil
}

// Move shifts a lead to another column. Any column may move to any other,
// including back out of converted; the board trusts the admin.
func (s *leadService) Move(ctx context.Context, id, status string) (models.Lead, error) {
	if !models.ValidLeadStatus(status) {
		return models.Lead{}, ErrInvalidLeadStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Lead{}, ErrLeadNotFound
		}
		return models.Lead{}, err
	}

	return s.Get(ctx, id)
}

// Convert marks the lead converted and returns a registration prefill. The
// prefill is transient; no persisted link ties the future student back to the
// lead.
func (s *leadService) Convert(ctx context.Context, id string) (dto.ConvertPrefill, error) {
	lead, err := s.Get(ctx, id)
	if err != nil {
		return dto.ConvertPrefill{}, err
	}

	course := lead.Course
	if !models.ValidCourse(course) {
		course = models.CourseBasic
	}

	if err := s.repo.UpdateStatus(ctx, id, models.LeadStatusConverted); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ConvertPrefill{}, ErrLeadNotFound
		}
		return dto.ConvertPrefill{}, err
	}

	s.logger.Info().Str("lead_id", id).Msg("lead converted")

	return dto.ConvertPrefill{
		Name:     lead.Name,
		WhatsApp: lead.Phone,
		Email:    lead.Email,
		Course:   course,
		Notes:    lead.Notes,
		Source:   lead.Source,
	}, nil
}

func (s *leadService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Ingest accepts a server-to-server lead. Only the name is mandatory; the rest
// is stored as provided.
func (s *leadService) Ingest(ctx context.Context, req dto.LeadIngestRequest) (models.Lead, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Lead{}, ErrLeadNameRequired
	}

	lead := models.Lead{
		Name:   name,
		Phone:  strings.TrimSpace(req.Phone),
		Email:  strings.TrimSpace(req.Email),
		Course: strings.TrimSpace(req.Course),
		Status: models.LeadStatusNew,
		Source: strings.TrimSpace(req.Source),
		Notes:  req.Notes,
	}
	if lead.Source == "" {
		lead.Source = "integration"
	}

	if err := s.repo.Create(ctx, &lead); err != nil {
		return models.Lead{}, err
	}

	s.logger.Info().Str("lead_id", lead.ID).Str("source", lead.Source).Msg("lead ingested")
	return lead, nil
}

// Score asks the model gateway to rank the open pipeline. Converted and
// not-interested leads are excluded; leads the model skips are simply absent
// from the result.
func (s *leadService) Score(ctx context.Context) ([]dto.ScoredLead, error) {
	if s.scorer == nil {
		return nil, ErrScoringDisabled
	}

	leads, err := s.repo.List(ctx, repository.LeadFilter{})
	if err != nil {
		return nil, err
	}

	summaries := make([]scoring.LeadSummary, 0, len(leads))
	for _, lead := range leads {
		if lead.Status == models.LeadStatusConverted || lead.Status == models.LeadStatusNotInterested {
			continue
		}
		summaries = append(summaries, scoring.LeadSummary{
			ID:           lead.ID,
			Name:         lead.Name,
			Status:       lead.Status,
			Course:       lead.Course,
			Source:       lead.Source,
			Notes:        lead.Notes,
			FollowUpDate: lead.FollowUpDate,
			CreatedAt:    lead.CreatedAt.Format(time.DateOnly),
		})
	}

	scores, err := s.scorer.Score(ctx, summaries)
	if err != nil {
		s.logger.Warn().Err(err).Msg("lead scoring failed")
		return nil, err
	}

	result := make([]dto.ScoredLead, 0, len(scores))
	for _, score := range scores {
		result = append(result, dto.ScoredLead{ID: score.ID, Score: score.Score, Reason: score.Reason})
	}
	return result, nil
}
