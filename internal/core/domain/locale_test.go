package domain_test

import (
	"testing"

	"github.com/wordnum/wordnum_app/internal/apperrors"
	"github.com/wordnum/wordnum_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLocale() *domain.LocaleConfig {
	return &domain.LocaleConfig{
		Code:     "en-US",
		Currency: domain.CurrencyNames{Major: "dollars", Minor: "cents"},
		Numbers: domain.NumberWords{
			Ones:     make([]string, 10),
			Tens:     make([]string, 10),
			Hundreds: make([]string, 10),
			Scales:   []string{"", "thousand"},
		},
		Settings: domain.LocaleSettings{
			NegativeWord:   "minus",
			ZeroWord:       "zero",
			CurrencyFormat: "{whole} {major} and {decimal} {minor}",
			NumberFormat:   "{whole} point {decimal}",
		},
	}
}

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	require.NoError(t, validLocale().Validate())
}

func TestValidateRejectsFirstViolation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.LocaleConfig)
		message string
	}{
		{
			name:    "ones wrong length",
			mutate:  func(c *domain.LocaleConfig) { c.Numbers.Ones = make([]string, 9) },
			message: "numbers.ones must have exactly 10 entries, got 9",
		},
		{
			name:    "tens wrong length",
			mutate:  func(c *domain.LocaleConfig) { c.Numbers.Tens = make([]string, 11) },
			message: "numbers.tens must have exactly 10 entries, got 11",
		},
		{
			name:    "hundreds wrong length",
			mutate:  func(c *domain.LocaleConfig) { c.Numbers.Hundreds = nil },
			message: "numbers.hundreds must have exactly 10 entries, got 0",
		},
		{
			name:    "empty currency format",
			mutate:  func(c *domain.LocaleConfig) { c.Settings.CurrencyFormat = "" },
			message: "settings.currencyFormat must not be empty",
		},
		{
			name:    "empty zero word",
			mutate:  func(c *domain.LocaleConfig) { c.Settings.ZeroWord = "" },
			message: "settings.zeroWord must not be empty",
		},
		{
			name:    "empty negative word",
			mutate:  func(c *domain.LocaleConfig) { c.Settings.NegativeWord = "" },
			message: "settings.negativeWord must not be empty",
		},
		{
			name:    "empty number format",
			mutate:  func(c *domain.LocaleConfig) { c.Settings.NumberFormat = "" },
			message: "settings.numberFormat must not be empty",
		},
		{
			name:    "teens wrong length",
			mutate:  func(c *domain.LocaleConfig) { c.Special.Teens = make([]string, 8) },
			message: "specialNumbers.teens must have exactly 9 entries, got 8",
		},
		{
			name:    "no scales",
			mutate:  func(c *domain.LocaleConfig) { c.Numbers.Scales = nil },
			message: "numbers.scales must have at least one entry",
		},
		{
			name: "skip one for hundred without literal",
			mutate: func(c *domain.LocaleConfig) {
				c.Settings.SkipOneForHundred = true
				c.Numbers.HundredWord = ""
			},
			message: "numbers.hundredWord must not be empty when settings.skipOneForHundred is enabled",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			locale := validLocale()
			tc.mutate(locale)

			err := locale.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrConfig)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

// The check order is fixed, so a config with several violations always
// reports the earliest one.
func TestValidateReportsChecksInOrder(t *testing.T) {
	locale := validLocale()
	locale.Numbers.Ones = nil
	locale.Settings.ZeroWord = ""

	err := locale.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "numbers.ones")
	assert.NotContains(t, err.Error(), "zeroWord")
}

func TestCompoundSeparatorDefaultsToSpace(t *testing.T) {
	locale := validLocale()
	assert.Equal(t, " ", locale.CompoundSeparator())

	locale.Special.CompoundSeparator = "-"
	assert.Equal(t, "-", locale.CompoundSeparator())
}

func TestHasTeensRequiresFlagAndTable(t *testing.T) {
	locale := validLocale()
	assert.False(t, locale.HasTeens())

	locale.Settings.UseTeens = true
	assert.False(t, locale.HasTeens())

	locale.Special.Teens = make([]string, 9)
	assert.True(t, locale.HasTeens())
}
