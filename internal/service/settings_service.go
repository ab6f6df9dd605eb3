package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/artneelam/studio-api/internal/dto"
	"github.com/artneelam/studio-api/internal/models"
	"github.com/artneelam/studio-api/internal/repository"
)

// SettingsService reads and writes the singleton configuration row.
type SettingsService interface {
	Get(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, req dto.SettingsUpdateRequest) (models.Settings, error)
}

type settingsService struct {
	settings repository.SettingsRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewSettingsService builds the settings service.
func NewSettingsService(settings repository.SettingsRepository, validate *validator.Validate, logger zerolog.Logger) SettingsService {
	return &settingsService{
		settings: settings,
		validate: validate,
		logger:   logger.With().Str("component", "settings_service").Logger(),
	}
}

func (s *settingsService) Get(ctx context.Context) (models.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, req dto.SettingsUpdateRequest) (models.Settings, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Settings{}, err
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return models.Settings{}, err
	}

	settings.WebhookURL = strings.TrimSpace(req.WebhookURL)
	settings.Toggles = datatypes.NewJSONType(req.Toggles)

	if err := s.settings.Save(ctx, &settings); err != nil {
		return models.Settings{}, err
	}

	s.logger.Info().Msg("settings updated")
	return settings, nil
}
