package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
)

// sessionDefaults builds the editing context new drafts start with.
// Overriding a language or currency code replaces the whole record: its ID
// must be given too, and the display name or symbol falls back to the code.
func sessionDefaults() (domain.Session, error) {
	defaults := domain.DefaultSession()

	if code := os.Getenv("DRAFT_DEFAULT_LANGUAGE"); code != "" {
		raw := os.Getenv("DRAFT_DEFAULT_LANGUAGE_ID")
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return domain.Session{}, fmt.Errorf("DRAFT_DEFAULT_LANGUAGE_ID %q: want a positive integer", raw)
		}
		code = strings.ToLower(code)
		defaults.ActiveLanguage = domain.Language{
			ID:   id,
			Code: code,
			Name: env("DRAFT_DEFAULT_LANGUAGE_NAME", code),
		}
	}

	if code := os.Getenv("DRAFT_DEFAULT_CURRENCY"); code != "" {
		id := os.Getenv("DRAFT_DEFAULT_CURRENCY_ID")
		if id == "" {
			return domain.Session{}, fmt.Errorf("DRAFT_DEFAULT_CURRENCY %q needs DRAFT_DEFAULT_CURRENCY_ID", code)
		}
		code = strings.ToUpper(code)
		defaults.ActiveCurrency = domain.Currency{
			ID:           id,
			Code:         code,
			Symbol:       env("DRAFT_DEFAULT_CURRENCY_SYMBOL", code),
			ExchangeRate: 1.0,
		}
	}

	return defaults, nil
}
