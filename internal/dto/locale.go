package dto

import (
	"github.com/wordnum/wordnum_app/internal/core/domain"
)

// LocaleResponse defines the summary data returned when listing locales.
type LocaleResponse struct {
	Code     string               `json:"code"`
	Currency domain.CurrencyNames `json:"currency"`
}

// LocaleDetailResponse defines the full locale definition returned for a
// single locale.
type LocaleDetailResponse struct {
	Code     string                `json:"code"`
	Currency domain.CurrencyNames  `json:"currency"`
	Numbers  domain.NumberWords    `json:"numbers"`
	Special  domain.SpecialNumbers `json:"specialNumbers"`
	Settings domain.LocaleSettings `json:"settings"`
}

// ToLocaleResponse converts a domain.LocaleConfig to LocaleResponse DTO
func ToLocaleResponse(locale *domain.LocaleConfig) LocaleResponse {
	return LocaleResponse{
		Code:     locale.Code,
		Currency: locale.Currency,
	}
}

// ToLocaleDetailResponse converts a domain.LocaleConfig to LocaleDetailResponse DTO
func ToLocaleDetailResponse(locale *domain.LocaleConfig) LocaleDetailResponse {
	return LocaleDetailResponse{
		Code:     locale.Code,
		Currency: locale.Currency,
		Numbers:  locale.Numbers,
		Special:  locale.Special,
		Settings: locale.Settings,
	}
}

// ToListLocaleResponse converts a slice of domain.LocaleConfig to a slice of LocaleResponse DTOs
func ToListLocaleResponse(locales []domain.LocaleConfig) []LocaleResponse {
	res := make([]LocaleResponse, len(locales))
	for i := range locales {
		res[i] = ToLocaleResponse(&locales[i])
	}
	return res
}
