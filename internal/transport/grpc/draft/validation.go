package draft

import (
	"fmt"
	"strings"
)

func requireDraftID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("draftId is required")
	}
	return nil
}

func validateUpsertTranslation(req UpsertTranslationRequest) error {
	if err := requireDraftID(req.DraftID); err != nil {
		return err
	}
	if strings.TrimSpace(req.LanguageID) == "" {
		return fmt.Errorf("languageId is required")
	}
	return nil
}

func validateUpsertPrice(req UpsertPriceRequest) error {
	if err := requireDraftID(req.DraftID); err != nil {
		return err
	}
	if strings.TrimSpace(req.CurrencyID) == "" {
		return fmt.Errorf("currencyId is required")
	}
	return nil
}

func validateMedia(req MediaRequest) error {
	if err := requireDraftID(req.DraftID); err != nil {
		return err
	}
	if strings.TrimSpace(req.Media.URL) == "" {
		return fmt.Errorf("media.url is required")
	}
	return nil
}

func validateUpdateVariant(req UpdateVariantRequest) error {
	if err := requireDraftID(req.DraftID); err != nil {
		return err
	}
	if req.VariantID == "" {
		return fmt.Errorf("variantId is required")
	}
	return nil
}

func validateTag(req TagRequest) error {
	if err := requireDraftID(req.DraftID); err != nil {
		return err
	}
	if strings.TrimSpace(req.Tag) == "" {
		return fmt.Errorf("tag is required")
	}
	return nil
}

func validateSetActiveLanguage(req SetActiveLanguageRequest) error {
	if err := requireDraftID(req.DraftID); err != nil {
		return err
	}
	if strings.TrimSpace(req.Language.Code) == "" {
		return fmt.Errorf("language.code is required")
	}
	return nil
}

func validateSetActiveCurrency(req SetActiveCurrencyRequest) error {
	if err := requireDraftID(req.DraftID); err != nil {
		return err
	}
	if strings.TrimSpace(req.Currency.ID) == "" {
		return fmt.Errorf("currency.id is required")
	}
	return nil
}
