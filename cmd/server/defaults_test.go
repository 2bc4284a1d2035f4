package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
)

func TestSessionDefaults_BuiltIn(t *testing.T) {
	got, err := sessionDefaults()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSession(), got)
}

func TestSessionDefaults_OverrideReplacesWholeRecord(t *testing.T) {
	t.Setenv("DRAFT_DEFAULT_LANGUAGE", "DE")
	t.Setenv("DRAFT_DEFAULT_LANGUAGE_ID", "3")
	t.Setenv("DRAFT_DEFAULT_CURRENCY", "eur")
	t.Setenv("DRAFT_DEFAULT_CURRENCY_ID", "2")

	got, err := sessionDefaults()
	require.NoError(t, err)

	assert.Equal(t, domain.Language{ID: 3, Code: "de", Name: "de"}, got.ActiveLanguage)
	assert.Equal(t, domain.Currency{ID: "2", Code: "EUR", Symbol: "EUR", ExchangeRate: 1.0}, got.ActiveCurrency)
}

func TestSessionDefaults_ExplicitNameAndSymbol(t *testing.T) {
	t.Setenv("DRAFT_DEFAULT_LANGUAGE", "de")
	t.Setenv("DRAFT_DEFAULT_LANGUAGE_ID", "3")
	t.Setenv("DRAFT_DEFAULT_LANGUAGE_NAME", "Deutsch")
	t.Setenv("DRAFT_DEFAULT_CURRENCY", "EUR")
	t.Setenv("DRAFT_DEFAULT_CURRENCY_ID", "2")
	t.Setenv("DRAFT_DEFAULT_CURRENCY_SYMBOL", "€")

	got, err := sessionDefaults()
	require.NoError(t, err)

	assert.Equal(t, "Deutsch", got.ActiveLanguage.Name)
	assert.Equal(t, "€", got.ActiveCurrency.Symbol)
}

func TestSessionDefaults_CodeWithoutID(t *testing.T) {
	t.Run("language", func(t *testing.T) {
		t.Setenv("DRAFT_DEFAULT_LANGUAGE", "de")
		_, err := sessionDefaults()
		require.Error(t, err)
	})
	t.Run("language id not a number", func(t *testing.T) {
		t.Setenv("DRAFT_DEFAULT_LANGUAGE", "de")
		t.Setenv("DRAFT_DEFAULT_LANGUAGE_ID", "x")
		_, err := sessionDefaults()
		require.Error(t, err)
	})
	t.Run("currency", func(t *testing.T) {
		t.Setenv("DRAFT_DEFAULT_CURRENCY", "EUR")
		_, err := sessionDefaults()
		require.Error(t, err)
	})
}
