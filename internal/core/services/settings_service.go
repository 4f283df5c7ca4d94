package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/idanlevi/cost_manager_app/internal/apperrors"
	portsrepo "github.com/idanlevi/cost_manager_app/internal/core/ports/repositories"
	portssvc "github.com/idanlevi/cost_manager_app/internal/core/ports/services"
	"github.com/idanlevi/cost_manager_app/internal/models"
)

// settingsService manages the persisted exchange-rate endpoint URL.
type settingsService struct {
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// GetRateURL returns the saved endpoint, or apperrors.ErrNotFound when none
// has been configured.
func (s *settingsService) GetRateURL(ctx context.Context) (string, error) {
	value, err := s.settingsRepo.FindSetting(ctx, models.SettingKeyRateURL)
	if err != nil {
		return "", fmt.Errorf("failed to get rate URL in service: %w", err)
	}
	return value, nil
}

// SetRateURL validates and saves the endpoint URL.
func (s *settingsService) SetRateURL(ctx context.Context, rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil || !parsed.IsAbs() || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("%w: rate URL must be an absolute http(s) URL", apperrors.ErrValidation)
	}

	if err := s.settingsRepo.SaveSetting(ctx, models.SettingKeyRateURL, rawURL); err != nil {
		return fmt.Errorf("failed to save rate URL in service: %w", err)
	}
	return nil
}

// ClearRateURL removes the saved endpoint. Clearing an unset URL is a no-op.
func (s *settingsService) ClearRateURL(ctx context.Context) error {
	if err := s.settingsRepo.DeleteSetting(ctx, models.SettingKeyRateURL); err != nil {
		return fmt.Errorf("failed to clear rate URL in service: %w", err)
	}
	return nil
}
