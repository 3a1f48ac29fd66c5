package repositories

import (
	"context"

	"github.com/wordnum/wordnum_app/internal/core/domain"
)

// LocaleReader defines read operations for locale configuration data.
type LocaleReader interface {
	// FindLocaleByCode retrieves a specific locale configuration by its
	// code (e.g. "en-US"). Returns apperrors.ErrNotFound when the code is
	// unknown.
	FindLocaleByCode(ctx context.Context, code string) (*domain.LocaleConfig, error)

	// ListLocales retrieves all available locale configurations.
	ListLocales(ctx context.Context) ([]domain.LocaleConfig, error)
}

// LocaleRepository combines all locale-related repository interfaces.
// Locale data is read-only: definitions are validated at load time and
// never mutated, so there is no writer interface.
type LocaleRepository interface {
	LocaleReader
}
