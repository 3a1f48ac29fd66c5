package dto

import (
	"github.com/shopspring/decimal"
	"github.com/wordnum/wordnum_app/internal/core/domain"
)

// CurrencyOverride carries replacement currency unit names for a single
// conversion.
type CurrencyOverride struct {
	Major string `json:"major" binding:"required"`
	Minor string `json:"minor" binding:"required"`
}

// ConvertRequest defines the data needed to convert an amount to words.
// Amount deliberately has no "required" binding: zero is a valid amount
// and must render as the locale's zero word.
type ConvertRequest struct {
	Amount decimal.Decimal `json:"amount"`
	// Locale is the locale code, e.g. "en-US". Empty selects the
	// configured default locale.
	Locale string `json:"locale"`
	// WithoutCurrency selects the plain number format template instead of
	// the currency phrase.
	WithoutCurrency bool `json:"withoutCurrency"`
	// Currency optionally overrides the locale's currency unit names.
	Currency *CurrencyOverride `json:"currency,omitempty"`
}

// ConvertResponse defines the data returned for a conversion.
type ConvertResponse struct {
	Amount decimal.Decimal `json:"amount"`
	Locale string          `json:"locale"`
	Words  string          `json:"words"`
}

// ToCurrencyNames converts a CurrencyOverride DTO to the domain value.
func (o *CurrencyOverride) ToCurrencyNames() *domain.CurrencyNames {
	if o == nil {
		return nil
	}
	return &domain.CurrencyNames{Major: o.Major, Minor: o.Minor}
}
