package services

import (
	"context"

	"github.com/wordnum/wordnum_app/internal/core/domain"
)

// LocaleReaderSvc defines read operations for locale configuration data.
type LocaleReaderSvc interface {
	// GetLocaleByCode retrieves a specific locale configuration by its code.
	GetLocaleByCode(ctx context.Context, code string) (*domain.LocaleConfig, error)

	// ListLocales retrieves all available locale configurations.
	ListLocales(ctx context.Context) ([]domain.LocaleConfig, error)

	// DefaultLocaleCode returns the code used when a request names no locale.
	DefaultLocaleCode() string
}

// LocaleSvcFacade combines all locale-related service interfaces.
type LocaleSvcFacade interface {
	LocaleReaderSvc
}
