package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wordnum/wordnum_app/internal/apperrors"
	"github.com/wordnum/wordnum_app/internal/core/domain"
)

// ConverterService turns decimal amounts into natural-language phrases
// using a locale configuration. It holds no per-call state; the scale
// index is threaded through the render calls explicitly, so one instance
// serves concurrent requests.
type ConverterService struct{}

func NewConverterService() *ConverterService {
	return &ConverterService{}
}

// Convert renders amount as a currency phrase ("one hundred dollars fifty
// cents") using the locale's currency format template. When override is
// non-nil its unit names replace the locale's own currency names.
func (s *ConverterService) Convert(ctx context.Context, amount decimal.Decimal, locale *domain.LocaleConfig, override *domain.CurrencyNames) (string, error) {
	currency := locale.Currency
	if override != nil {
		currency = *override
	}
	return s.compose(amount, locale, locale.Settings.CurrencyFormat, &currency)
}

// ConvertWithoutCurrency renders amount using the locale's plain number
// format template, no currency unit names.
func (s *ConverterService) ConvertWithoutCurrency(ctx context.Context, amount decimal.Decimal, locale *domain.LocaleConfig) (string, error) {
	return s.compose(amount, locale, locale.Settings.NumberFormat, nil)
}

// compose implements the shared conversion algorithm: strip the sign,
// split into whole and two-digit fractional parts, render both through the
// magnitude renderer, substitute into the format template, and prepend the
// negative word if needed.
//
// The fractional part is always two minor-currency digits: the remainder
// after the whole part is shifted by two places and rounded half away from
// zero. That order is deliberate and observable — x.999 yields a minor
// part of 100, rendered in words.
func (s *ConverterService) compose(amount decimal.Decimal, locale *domain.LocaleConfig, format string, currency *domain.CurrencyNames) (string, error) {
	// Repository-served locales are validated at load time; this guards
	// callers that construct a configuration themselves.
	if err := locale.Validate(); err != nil {
		return "", err
	}

	negative := amount.IsNegative()
	abs := amount.Abs()
	whole := abs.Truncate(0)
	minor := abs.Sub(whole).Shift(2).Round(0)

	wholeInt := whole.BigInt()
	if !wholeInt.IsInt64() {
		return "", fmt.Errorf("%w: whole part %s exceeds the supported magnitude", apperrors.ErrRange, whole.String())
	}

	wholeWords, err := s.renderMagnitude(wholeInt.Int64(), locale)
	if err != nil {
		return "", err
	}
	if wholeWords == "" {
		wholeWords = locale.Settings.ZeroWord
	}

	minorWords, err := s.renderMagnitude(minor.IntPart(), locale)
	if err != nil {
		return "", err
	}
	if minorWords == "" {
		minorWords = locale.Settings.ZeroWord
	}

	// Unknown placeholders stay verbatim; a template that omits a
	// placeholder simply drops that piece of information.
	pairs := []string{"{whole}", wholeWords, "{decimal}", minorWords}
	if currency != nil {
		pairs = append(pairs, "{major}", currency.Major, "{minor}", currency.Minor)
	}
	result := strings.TrimSpace(strings.NewReplacer(pairs...).Replace(format))

	if negative {
		result = locale.Settings.NegativeWord + " " + result
	}
	return result, nil
}

// renderMagnitude renders a non-negative integer as words, or an empty
// string for zero (callers substitute the zero word). The value is
// decomposed into base-1000 groups; a zero-valued group contributes
// nothing, including its scale word, and groups beyond the locale's
// scales table fail with ErrRange.
func (s *ConverterService) renderMagnitude(n int64, locale *domain.LocaleConfig) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: magnitude renderer received negative value %d", apperrors.ErrArgument, n)
	}
	if n == 0 {
		return "", nil
	}

	var groups []int64
	for v := n; v > 0; v /= 1000 {
		groups = append(groups, v%1000)
	}
	if len(groups) > len(locale.Numbers.Scales) {
		return "", fmt.Errorf("%w: %d needs %d scale groups but locale %q defines %d", apperrors.ErrRange, n, len(groups), locale.Code, len(locale.Numbers.Scales))
	}

	var parts []string
	for scaleIndex := len(groups) - 1; scaleIndex >= 0; scaleIndex-- {
		group := groups[scaleIndex]
		if group == 0 {
			continue
		}
		if text := s.renderGroup(group, scaleIndex, locale); text != "" {
			parts = append(parts, text)
		}
		if scaleIndex >= 1 {
			parts = append(parts, locale.Numbers.Scales[scaleIndex])
		}
	}
	return strings.Join(parts, " "), nil
}

// renderGroup renders a single base-1000 group (1..999) at the given
// scale index. The hundreds digit is emitted first, then the 0-99
// remainder with teens taking precedence over the special map, which in
// turn beats plain tens/ones decomposition.
func (s *ConverterService) renderGroup(group int64, scaleIndex int, locale *domain.LocaleConfig) string {
	hundredsDigit := group / 100
	remainder := int(group % 100)

	var parts []string
	if hundredsDigit > 0 {
		if locale.Settings.SkipOneForHundred && hundredsDigit == 1 {
			parts = append(parts, locale.Numbers.HundredWord)
		} else {
			parts = append(parts, locale.Numbers.Hundreds[hundredsDigit])
		}
	}

	switch {
	case remainder == 0:
	case locale.HasTeens() && remainder >= 11 && remainder <= 19:
		parts = append(parts, locale.Special.Teens[remainder-11])
	default:
		if word, ok := locale.Special.Special[remainder]; ok {
			parts = append(parts, word)
			break
		}
		tensDigit := remainder / 10
		onesDigit := remainder % 10
		switch {
		case tensDigit > 0 && onesDigit > 0:
			if locale.Settings.UseCompoundNumbers {
				parts = append(parts, locale.Numbers.Tens[tensDigit]+locale.CompoundSeparator()+locale.Numbers.Ones[onesDigit])
			} else {
				parts = append(parts, locale.Numbers.Tens[tensDigit], locale.Numbers.Ones[onesDigit])
			}
		case tensDigit > 0:
			parts = append(parts, locale.Numbers.Tens[tensDigit])
		default:
			// Suppress the bare "one" immediately before the first scale
			// word ("one thousand" -> "thousand"). Only for a group value
			// of exactly 1 at scale index exactly 1, never in the units
			// group or higher scales.
			if locale.Settings.SkipOneForThousand && group == 1 && scaleIndex == 1 {
				break
			}
			parts = append(parts, locale.Numbers.Ones[onesDigit])
		}
	}

	return strings.Join(parts, " ")
}
