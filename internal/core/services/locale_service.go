package services

import (
	"context"
	"fmt"

	"github.com/wordnum/wordnum_app/internal/core/domain"
	portsrepo "github.com/wordnum/wordnum_app/internal/core/ports/repositories"
)

// LocaleService fronts the locale repository for the handlers and resolves
// the default locale code for requests that do not name one.
type LocaleService struct {
	localeRepo    portsrepo.LocaleRepository
	defaultLocale string
}

func NewLocaleService(localeRepo portsrepo.LocaleRepository, defaultLocale string) *LocaleService {
	return &LocaleService{
		localeRepo:    localeRepo,
		defaultLocale: defaultLocale,
	}
}

// GetLocaleByCode retrieves a locale configuration by its code. The
// repository returns apperrors.ErrNotFound for unknown codes; that is
// passed through for the handler to map.
func (s *LocaleService) GetLocaleByCode(ctx context.Context, code string) (*domain.LocaleConfig, error) {
	locale, err := s.localeRepo.FindLocaleByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get locale by code in service: %w", err)
	}
	return locale, nil
}

// ListLocales retrieves all available locale configurations.
func (s *LocaleService) ListLocales(ctx context.Context) ([]domain.LocaleConfig, error) {
	locales, err := s.localeRepo.ListLocales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locales in service: %w", err)
	}
	// Return empty slice if no locales found, not nil
	if locales == nil {
		return []domain.LocaleConfig{}, nil
	}
	return locales, nil
}

// DefaultLocaleCode returns the configured default locale code.
func (s *LocaleService) DefaultLocaleCode() string {
	return s.defaultLocale
}
