package domain

import (
	"fmt"

	"github.com/wordnum/wordnum_app/internal/apperrors"
)

const (
	// wordTableSize is the required length of the ones/tens/hundreds tables.
	// Index 0 of each table is an empty placeholder for "no digit".
	wordTableSize = 10

	// teensTableSize is the required length of a teens table when one is
	// present. Indices 0..8 map to the values 11..19.
	teensTableSize = 9
)

// CurrencyNames holds the unit names for one currency (e.g., "dollar"/"cent").
type CurrencyNames struct {
	Major string `json:"major"`
	Minor string `json:"minor"`
}

// NumberWords holds the word lookup tables for one locale.
// Scales[0] is an empty placeholder for the units group; Scales[1] is the
// thousand-equivalent, and so on. The length of Scales bounds the largest
// magnitude the locale can render.
type NumberWords struct {
	Ones     []string `json:"ones"`
	Tens     []string `json:"tens"`
	Hundreds []string `json:"hundreds"`
	// HundredWord is the bare hundred literal emitted when
	// SkipOneForHundred replaces the "one hundred" phrase (e.g. "yüz").
	// Required exactly when that setting is enabled.
	HundredWord string   `json:"hundredWord,omitempty"`
	Scales      []string `json:"scales"`
}

// SpecialNumbers holds the irregular-number rules for one locale.
type SpecialNumbers struct {
	// Teens replaces the tens/ones decomposition for remainders 11..19.
	Teens []string `json:"teens,omitempty"`
	// Special is an exact replacement for a 0-99 remainder, keyed by value.
	Special map[int]string `json:"special,omitempty"`
	// CompoundSeparator joins tens and ones into a single compound token.
	// An empty value means a single space.
	CompoundSeparator string `json:"compoundSeparator,omitempty"`
}

// LocaleSettings holds the formatting rules and flags for one locale.
type LocaleSettings struct {
	SkipOneForThousand bool   `json:"skipOneForThousand"`
	SkipOneForHundred  bool   `json:"skipOneForHundred"`
	NegativeWord       string `json:"negativeWord"`
	ZeroWord           string `json:"zeroWord"`
	CurrencyFormat     string `json:"currencyFormat"`
	NumberFormat       string `json:"numberFormat"`
	UseTeens           bool   `json:"useTeens"`
	UseCompoundNumbers bool   `json:"useCompoundNumbers"`
}

// LocaleConfig is the full set of word tables and formatting rules for one
// language/currency pairing. It is immutable after construction: validated
// once when loaded and read-only during conversions, so a single instance
// is safe for concurrent use.
type LocaleConfig struct {
	Code     string         `json:"code"` // BCP 47 style, e.g. "en-US"
	Currency CurrencyNames  `json:"currency"`
	Numbers  NumberWords    `json:"numbers"`
	Special  SpecialNumbers `json:"specialNumbers"`
	Settings LocaleSettings `json:"settings"`
}

// Validate checks the structural invariants of the configuration and
// returns an error wrapping apperrors.ErrConfig naming the first violated
// field. The check order is fixed (ones, tens, hundreds, currencyFormat,
// zeroWord, negativeWord, numberFormat, teens, scales, hundredWord) so
// error messages are stable.
func (c *LocaleConfig) Validate() error {
	if len(c.Numbers.Ones) != wordTableSize {
		return fmt.Errorf("%w: numbers.ones must have exactly %d entries, got %d", apperrors.ErrConfig, wordTableSize, len(c.Numbers.Ones))
	}
	if len(c.Numbers.Tens) != wordTableSize {
		return fmt.Errorf("%w: numbers.tens must have exactly %d entries, got %d", apperrors.ErrConfig, wordTableSize, len(c.Numbers.Tens))
	}
	if len(c.Numbers.Hundreds) != wordTableSize {
		return fmt.Errorf("%w: numbers.hundreds must have exactly %d entries, got %d", apperrors.ErrConfig, wordTableSize, len(c.Numbers.Hundreds))
	}
	if c.Settings.CurrencyFormat == "" {
		return fmt.Errorf("%w: settings.currencyFormat must not be empty", apperrors.ErrConfig)
	}
	if c.Settings.ZeroWord == "" {
		return fmt.Errorf("%w: settings.zeroWord must not be empty", apperrors.ErrConfig)
	}
	if c.Settings.NegativeWord == "" {
		return fmt.Errorf("%w: settings.negativeWord must not be empty", apperrors.ErrConfig)
	}
	if c.Settings.NumberFormat == "" {
		return fmt.Errorf("%w: settings.numberFormat must not be empty", apperrors.ErrConfig)
	}
	if c.Special.Teens != nil && len(c.Special.Teens) != teensTableSize {
		return fmt.Errorf("%w: specialNumbers.teens must have exactly %d entries, got %d", apperrors.ErrConfig, teensTableSize, len(c.Special.Teens))
	}
	if len(c.Numbers.Scales) == 0 {
		return fmt.Errorf("%w: numbers.scales must have at least one entry", apperrors.ErrConfig)
	}
	if c.Settings.SkipOneForHundred && c.Numbers.HundredWord == "" {
		return fmt.Errorf("%w: numbers.hundredWord must not be empty when settings.skipOneForHundred is enabled", apperrors.ErrConfig)
	}
	return nil
}

// CompoundSeparator returns the configured compound separator, defaulting
// to a single space.
func (c *LocaleConfig) CompoundSeparator() string {
	if c.Special.CompoundSeparator == "" {
		return " "
	}
	return c.Special.CompoundSeparator
}

// HasTeens reports whether the locale both enables and defines the teens
// exception table.
func (c *LocaleConfig) HasTeens() bool {
	return c.Settings.UseTeens && len(c.Special.Teens) == teensTableSize
}
