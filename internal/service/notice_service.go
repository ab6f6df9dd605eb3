package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/artneelam/studio-api/internal/dto"
	"github.com/artneelam/studio-api/internal/models"
	"github.com/artneelam/studio-api/internal/repository"
)

// ErrInvalidAudience indicates an unknown notice audience.
var ErrInvalidAudience = errors.New("invalid notice audience")

// NoticeService manages the announcement board. Titles and bodies are
// sanitised before storage because they are rendered on the parent portal.
type NoticeService interface {
	List(ctx context.Context, filter repository.NoticeFilter) ([]models.Notice, error)
	Create(ctx context.Context, req dto.NoticeCreateRequest) (models.Notice, error)
	Delete(ctx context.Context, id string) error
}

type noticeService struct {
	notices  repository.NoticeRepository
	validate *validator.Validate
	policy   *bluemonday.Policy
	logger   zerolog.Logger
}

// NewNoticeService builds the notice service.
func NewNoticeService(notices repository.NoticeRepository, validate *validator.Validate, logger zerolog.Logger) NoticeService {
	return &noticeService{
		notices:  notices,
		validate: validate,
		policy:   bluemonday.StrictPolicy(),
		logger:   logger.With().Str("component", "notice_service").Logger(),
	}
}

func (s *noticeService) List(ctx context.Context, filter repository.NoticeFilter) ([]models.Notice, error) {
	if filter.Audience != "" && !models.ValidAudience(filter.Audience) {
		return nil, ErrInvalidAudience
	}
	return s.notices.List(ctx, filter)
}

func (s *noticeService) Create(ctx context.Context, req dto.NoticeCreateRequest) (models.Notice, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Notice{}, err
	}

	audience := req.Audience
	if audience == "" {
		audience = models.AudienceAll
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format(time.DateOnly)
	}

	notice := models.Notice{
		Title:    strings.TrimSpace(s.policy.Sanitize(req.Title)),
		Body:     strings.TrimSpace(s.policy.Sanitize(req.Body)),
		Date:     date,
		Audience: audience,
	}
	if err := s.notices.Create(ctx, &notice); err != nil {
		return models.Notice{}, err
	}

	s.logger.Info().Str("notice_id", notice.ID).Str("audience", notice.Audience).Msg("notice posted")
	return notice, nil
}

func (s *noticeService) Delete(ctx context.Context, id string) error {
	return s.notices.Delete(ctx, id)
}
