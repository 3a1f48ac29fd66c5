package locales_test

import (
	"context"
	"testing"

	"github.com/wordnum/wordnum_app/internal/adapters/locales"
	"github.com/wordnum/wordnum_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefinitionsLoadAndValidate(t *testing.T) {
	repo, err := locales.NewEmbeddedLocaleRepository()
	require.NoError(t, err)

	list, err := repo.ListLocales(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, list)

	codes := make([]string, len(list))
	for i, locale := range list {
		codes[i] = locale.Code
		assert.NoError(t, locale.Validate(), "locale %s", locale.Code)
	}
	assert.Equal(t, []string{"en-US", "es-ES", "tr-TR"}, codes)
}

func TestFindLocaleByCode(t *testing.T) {
	repo, err := locales.NewEmbeddedLocaleRepository()
	require.NoError(t, err)

	locale, err := repo.FindLocaleByCode(context.Background(), "tr-TR")
	require.NoError(t, err)
	assert.Equal(t, "tr-TR", locale.Code)
	assert.Equal(t, "lira", locale.Currency.Major)
	assert.True(t, locale.Settings.SkipOneForHundred)
	assert.Equal(t, "yüz", locale.Numbers.HundredWord)
}

func TestFindLocaleByCodeUnknown(t *testing.T) {
	repo, err := locales.NewEmbeddedLocaleRepository()
	require.NoError(t, err)

	_, err = repo.FindLocaleByCode(context.Background(), "xx-XX")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSpecialNumberKeysAreIntegers(t *testing.T) {
	repo, err := locales.NewEmbeddedLocaleRepository()
	require.NoError(t, err)

	locale, err := repo.FindLocaleByCode(context.Background(), "es-ES")
	require.NoError(t, err)
	assert.Equal(t, "veintiuno", locale.Special.Special[21])
	assert.Equal(t, "veintinueve", locale.Special.Special[29])
}
