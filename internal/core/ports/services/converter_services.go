package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wordnum/wordnum_app/internal/core/domain"
)

// ConverterSvc defines the amount-to-words conversion operations.
// Implementations are stateless apart from read-only configuration and are
// safe for concurrent use.
type ConverterSvc interface {
	// Convert renders the amount as a full currency phrase using the
	// locale's currency format template. When override is non-nil its unit
	// names are substituted instead of the locale's own currency.
	Convert(ctx context.Context, amount decimal.Decimal, locale *domain.LocaleConfig, override *domain.CurrencyNames) (string, error)

	// ConvertWithoutCurrency renders the amount using the locale's plain
	// number format template, with no currency unit names.
	ConvertWithoutCurrency(ctx context.Context, amount decimal.Decimal, locale *domain.LocaleConfig) (string, error)
}

// ConverterSvcFacade combines all converter service interfaces.
type ConverterSvcFacade interface {
	ConverterSvc
}
