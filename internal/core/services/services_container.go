package services

import (
	portsrepo "github.com/wordnum/wordnum_app/internal/core/ports/repositories"
	portssvc "github.com/wordnum/wordnum_app/internal/core/ports/services"
	"github.com/wordnum/wordnum_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, localeRepo portsrepo.LocaleRepository) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Converter = NewConverterService()
	container.Locale = NewLocaleService(localeRepo, cfg.DefaultLocale)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ConverterSvcFacade = (*ConverterService)(nil)
	_ portssvc.LocaleSvcFacade    = (*LocaleService)(nil)
)
