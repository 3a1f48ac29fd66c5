package locales

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"sort"

	"github.com/spf13/viper"
	"github.com/wordnum/wordnum_app/internal/apperrors"
	"github.com/wordnum/wordnum_app/internal/core/domain"
	portsrepo "github.com/wordnum/wordnum_app/internal/core/ports/repositories"
)

//go:embed definitions/*.json
var definitionsFS embed.FS

// EmbeddedLocaleRepository serves locale configurations bundled with the
// binary. Every definition is parsed and validated at construction time so
// a malformed locale file fails startup rather than a request; after that
// the repository is read-only and safe for concurrent use.
type EmbeddedLocaleRepository struct {
	locales map[string]*domain.LocaleConfig
	codes   []string
}

// NewEmbeddedLocaleRepository loads and validates all embedded locale
// definitions.
func NewEmbeddedLocaleRepository() (portsrepo.LocaleRepository, error) {
	entries, err := definitionsFS.ReadDir("definitions")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded locale definitions: %w", err)
	}

	repo := &EmbeddedLocaleRepository{
		locales: make(map[string]*domain.LocaleConfig, len(entries)),
	}
	for _, entry := range entries {
		name := "definitions/" + entry.Name()
		data, err := definitionsFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale definition %s: %w", name, err)
		}

		locale, err := parseDefinition(data)
		if err != nil {
			return nil, fmt.Errorf("locale definition %s: %w", name, err)
		}
		if err := locale.Validate(); err != nil {
			return nil, fmt.Errorf("locale definition %s: %w", name, err)
		}
		if _, exists := repo.locales[locale.Code]; exists {
			return nil, fmt.Errorf("%w: duplicate locale code %q in %s", apperrors.ErrConfig, locale.Code, name)
		}

		repo.locales[locale.Code] = locale
		repo.codes = append(repo.codes, locale.Code)
	}
	sort.Strings(repo.codes)

	return repo, nil
}

// parseDefinition decodes one JSON locale definition.
func parseDefinition(data []byte) (*domain.LocaleConfig, error) {
	v := viper.New()
	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConfig, err)
	}

	var def localeDefinition
	if err := v.Unmarshal(&def); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConfig, err)
	}
	return def.toDomain()
}

// FindLocaleByCode retrieves a locale configuration by its exact code.
func (r *EmbeddedLocaleRepository) FindLocaleByCode(ctx context.Context, code string) (*domain.LocaleConfig, error) {
	locale, ok := r.locales[code]
	if !ok {
		return nil, fmt.Errorf("%w: locale %q", apperrors.ErrNotFound, code)
	}
	return locale, nil
}

// ListLocales retrieves all locale configurations, ordered by code.
func (r *EmbeddedLocaleRepository) ListLocales(ctx context.Context) ([]domain.LocaleConfig, error) {
	locales := make([]domain.LocaleConfig, 0, len(r.codes))
	for _, code := range r.codes {
		locales = append(locales, *r.locales[code])
	}
	return locales, nil
}
