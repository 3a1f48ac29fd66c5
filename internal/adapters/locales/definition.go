package locales

import (
	"fmt"
	"strconv"

	"github.com/wordnum/wordnum_app/internal/apperrors"
	"github.com/wordnum/wordnum_app/internal/core/domain"
)

// localeDefinition mirrors the on-disk JSON shape of a locale file.
// It is decoded by viper/mapstructure and mapped to the domain type; the
// special-number map is keyed by strings on disk (JSON object keys) and
// converted to integers here.
type localeDefinition struct {
	Code     string `mapstructure:"code"`
	Currency struct {
		Major string `mapstructure:"major"`
		Minor string `mapstructure:"minor"`
	} `mapstructure:"currency"`
	Numbers struct {
		Ones        []string `mapstructure:"ones"`
		Tens        []string `mapstructure:"tens"`
		Hundreds    []string `mapstructure:"hundreds"`
		HundredWord string   `mapstructure:"hundredWord"`
		Scales      []string `mapstructure:"scales"`
	} `mapstructure:"numbers"`
	SpecialNumbers struct {
		Teens             []string          `mapstructure:"teens"`
		Special           map[string]string `mapstructure:"special"`
		CompoundSeparator string            `mapstructure:"compoundSeparator"`
	} `mapstructure:"specialNumbers"`
	Settings struct {
		SkipOneForThousand bool   `mapstructure:"skipOneForThousand"`
		SkipOneForHundred  bool   `mapstructure:"skipOneForHundred"`
		NegativeWord       string `mapstructure:"negativeWord"`
		ZeroWord           string `mapstructure:"zeroWord"`
		CurrencyFormat     string `mapstructure:"currencyFormat"`
		NumberFormat       string `mapstructure:"numberFormat"`
		UseTeens           bool   `mapstructure:"useTeens"`
		UseCompoundNumbers bool   `mapstructure:"useCompoundNumbers"`
	} `mapstructure:"settings"`
}

// toDomain maps the raw definition to the domain value object. It does not
// validate invariants (the caller runs LocaleConfig.Validate), but it does
// reject special-number keys that are not integers in [0, 99].
func (d *localeDefinition) toDomain() (*domain.LocaleConfig, error) {
	var special map[int]string
	if len(d.SpecialNumbers.Special) > 0 {
		special = make(map[int]string, len(d.SpecialNumbers.Special))
		for key, word := range d.SpecialNumbers.Special {
			value, err := strconv.Atoi(key)
			if err != nil || value < 0 || value > 99 {
				return nil, fmt.Errorf("%w: specialNumbers.special key %q is not an integer in [0, 99]", apperrors.ErrConfig, key)
			}
			special[value] = word
		}
	}

	return &domain.LocaleConfig{
		Code: d.Code,
		Currency: domain.CurrencyNames{
			Major: d.Currency.Major,
			Minor: d.Currency.Minor,
		},
		Numbers: domain.NumberWords{
			Ones:        d.Numbers.Ones,
			Tens:        d.Numbers.Tens,
			Hundreds:    d.Numbers.Hundreds,
			HundredWord: d.Numbers.HundredWord,
			Scales:      d.Numbers.Scales,
		},
		Special: domain.SpecialNumbers{
			Teens:             d.SpecialNumbers.Teens,
			Special:           special,
			CompoundSeparator: d.SpecialNumbers.CompoundSeparator,
		},
		Settings: domain.LocaleSettings{
			SkipOneForThousand: d.Settings.SkipOneForThousand,
			SkipOneForHundred:  d.Settings.SkipOneForHundred,
			NegativeWord:       d.Settings.NegativeWord,
			ZeroWord:           d.Settings.ZeroWord,
			CurrencyFormat:     d.Settings.CurrencyFormat,
			NumberFormat:       d.Settings.NumberFormat,
			UseTeens:           d.Settings.UseTeens,
			UseCompoundNumbers: d.Settings.UseCompoundNumbers,
		},
	}, nil
}
