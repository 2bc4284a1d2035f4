package edit_draft

import (
	"context"
	"strings"

	contracts "github.com/murkotick/product-draft-service/internal/app/draft/contracts"
	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	"github.com/murkotick/product-draft-service/internal/app/draft/store"
	shared "github.com/murkotick/product-draft-service/internal/app/draft/usecases/shared"
)

// Interactor applies single edits to an open draft. Every method addresses
// the session by id and is rejected while a submission is in flight.
type Interactor struct {
	Sessions contracts.SessionRepo
}

func NewInteractor(sessions contracts.SessionRepo) *Interactor {
	return &Interactor{Sessions: sessions}
}

func (it *Interactor) SetBasicInfo(ctx context.Context, draftID string, info domain.BasicInfo) error {
	return it.edit(ctx, draftID, func(s *store.Store) {
		s.SetBasicInfo(info)
	})
}

func (it *Interactor) UpsertTranslation(ctx context.Context, draftID, languageID string, fields domain.TranslationFields) error {
	languageID = strings.TrimSpace(languageID)
	if languageID == "" {
		return domain.ErrEmptyLanguageID
	}
	return it.edit(ctx, draftID, func(s *store.Store) {
		s.UpsertTranslation(languageID, fields)
	})
}

func (it *Interactor) UpsertPrice(ctx context.Context, draftID, currencyID string, fields domain.PriceFields) error {
	currencyID = strings.TrimSpace(currencyID)
	if currencyID == "" {
		return domain.ErrEmptyCurrencyID
	}
	return it.edit(ctx, draftID, func(s *store.Store) {
		s.UpsertPrice(currencyID, fields)
	})
}

func (it *Interactor) SetMainImage(ctx context.Context, draftID string, media domain.Media) error {
	return it.edit(ctx, draftID, func(s *store.Store) {
		s.SetMainImage(media)
	})
}

// ClearMainImage reports whether there was a main image to clear.
func (it *Interactor) ClearMainImage(ctx context.Context, draftID string) (bool, error) {
	var changed bool
	err := it.edit(ctx, draftID, func(s *store.Store) {
		changed = s.ClearMainImage()
	})
	return changed, err
}

func (it *Interactor) AppendGalleryImage(ctx context.Context, draftID string, media domain.Media) error {
	return it.edit(ctx, draftID, func(s *store.Store) {
		s.AppendGalleryImage(media)
	})
}

// RemoveGalleryImageAt reports whether index addressed an image.
func (it *Interactor) RemoveGalleryImageAt(ctx context.Context, draftID string, index int) (bool, error) {
	var changed bool
	err := it.edit(ctx, draftID, func(s *store.Store) {
		changed = s.RemoveGalleryImageAt(index)
	})
	return changed, err
}

func (it *Interactor) SetInventory(ctx context.Context, draftID string, fields domain.InventoryFields) error {
	return it.edit(ctx, draftID, func(s *store.Store) {
		s.SetInventory(fields)
	})
}

func (it *Interactor) SetAttributes(ctx context.Context, draftID string, attrs []domain.Attribute) error {
	return it.edit(ctx, draftID, func(s *store.Store) {
		s.SetAttributes(attrs)
	})
}

func (it *Interactor) SetVariations(ctx context.Context, draftID string, variants []domain.Variant) error {
	return it.edit(ctx, draftID, func(s *store.Store) {
		s.SetVariations(variants)
	})
}

// UpdateVariant reports whether the variant exists.
func (it *Interactor) UpdateVariant(ctx context.Context, draftID, variantID string, fields domain.VariantFields) (bool, error) {
	var found bool
	err := it.edit(ctx, draftID, func(s *store.Store) {
		found = s.UpdateVariant(variantID, fields)
	})
	return found, err
}

func (it *Interactor) SetOrganization(ctx context.Context, draftID string, fields domain.OrganizationFields) error {
	return it.edit(ctx, draftID, func(s *store.Store) {
		s.SetOrganization(fields)
	})
}

func (it *Interactor) AddTag(ctx context.Context, draftID, tag string) (bool, error) {
	var changed bool
	err := it.edit(ctx, draftID, func(s *store.Store) {
		changed = s.AddTag(tag)
	})
	return changed, err
}

func (it *Interactor) RemoveTag(ctx context.Context, draftID, tag string) (bool, error) {
	var changed bool
	err := it.edit(ctx, draftID, func(s *store.Store) {
		changed = s.RemoveTag(tag)
	})
	return changed, err
}

func (it *Interactor) SetActiveLanguage(ctx context.Context, draftID string, lang domain.Language) error {
	if strings.TrimSpace(lang.Code) == "" {
		return domain.ErrEmptyLanguageID
	}
	return it.edit(ctx, draftID, func(s *store.Store) {
		s.SetActiveLanguage(lang)
	})
}

func (it *Interactor) SetActiveCurrency(ctx context.Context, draftID string, cur domain.Currency) error {
	if strings.TrimSpace(cur.ID) == "" {
		return domain.ErrEmptyCurrencyID
	}
	return it.edit(ctx, draftID, func(s *store.Store) {
		s.SetActiveCurrency(cur)
	})
}

// SetErrors replaces the error mapping shown next to the form fields.
func (it *Interactor) SetErrors(ctx context.Context, draftID string, errs map[string]string) error {
	return it.edit(ctx, draftID, func(s *store.Store) {
		s.SetErrors(errs)
	})
}

func (it *Interactor) edit(ctx context.Context, draftID string, fn func(s *store.Store)) error {
	return it.Sessions.With(ctx, draftID, func(s *store.Store) error {
		if s.IsSubmitting() {
			return domain.ErrSubmissionInProgress
		}
		fn(s)
		shared.LogEvents(s.DrainEvents())
		return nil
	})
}
