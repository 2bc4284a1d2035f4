package validate_draft

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	"github.com/murkotick/product-draft-service/internal/app/draft/domain/services"
	"github.com/murkotick/product-draft-service/internal/app/draft/repo"
	"github.com/murkotick/product-draft-service/internal/app/draft/store"
	"github.com/murkotick/product-draft-service/internal/pkg/clock"
	"github.com/murkotick/product-draft-service/internal/pkg/dictionary"
)

type fakeReadModel struct {
	taken map[string]bool
	asked []string
}

func (rm *fakeReadModel) TakenSKUs(ctx context.Context, skus []string) (map[string]bool, error) {
	rm.asked = append(rm.asked, skus...)
	return rm.taken, nil
}

func setup(t *testing.T, rm *fakeReadModel) (*repo.SessionRepo, *Interactor) {
	t.Helper()
	sessions := repo.NewSessionRepo(clock.NewFake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)))
	_, err := sessions.Create(context.Background(), "d1", domain.DefaultSession())
	require.NoError(t, err)

	labels, err := dictionary.Load()
	require.NoError(t, err)
	return sessions, NewInteractor(sessions, rm, labels)
}

func TestValidate_StoresLocalizedErrors(t *testing.T) {
	rm := &fakeReadModel{}
	sessions, it := setup(t, rm)
	ctx := context.Background()

	errs, err := it.Execute(ctx, Request{DraftID: "d1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"sku":          "SKU is required",
		"translations": "At least one translation is required",
		"prices":       "At least one price is required",
	}, errs)
	assert.Empty(t, rm.asked)

	require.NoError(t, sessions.With(ctx, "d1", func(s *store.Store) error {
		snap := s.Snapshot()
		assert.Equal(t, errs, snap.Session.Errors)
		assert.False(t, snap.Dirty)
		return nil
	}))
}

func TestValidate_CleanDraftClearsErrors(t *testing.T) {
	rm := &fakeReadModel{taken: map[string]bool{}}
	sessions, it := setup(t, rm)
	ctx := context.Background()

	sku, name := "MUG", "Mug"
	require.NoError(t, sessions.With(ctx, "d1", func(s *store.Store) error {
		s.SetErrors(map[string]string{"sku": "stale"})
		s.SetBasicInfo(domain.BasicInfo{SKU: &sku})
		s.UpsertTranslation("en", domain.TranslationFields{Name: &name})
		s.UpsertPrice("1", domain.PriceFields{Price: domain.NewMoney(5, 1)})
		s.SetVariations([]domain.Variant{{ID: "v1", SKU: "MUG-RED-001"}})
		return nil
	}))

	errs, err := it.Execute(ctx, Request{DraftID: "d1"})
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, []string{"MUG", "MUG-RED-001"}, rm.asked)
}

func TestValidate_VariantSKUTaken(t *testing.T) {
	rm := &fakeReadModel{taken: map[string]bool{"MUG-RED-001": true}}
	sessions, it := setup(t, rm)
	ctx := context.Background()

	sku, name := "MUG", "Mug"
	require.NoError(t, sessions.With(ctx, "d1", func(s *store.Store) error {
		s.SetBasicInfo(domain.BasicInfo{SKU: &sku})
		s.UpsertTranslation("en", domain.TranslationFields{Name: &name})
		s.UpsertPrice("1", domain.PriceFields{Price: domain.NewMoney(5, 1)})
		s.SetVariations([]domain.Variant{{ID: "v1", SKU: "MUG-RED-001"}})
		return nil
	}))

	errs, err := it.Execute(ctx, Request{DraftID: "d1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"variations.0.sku": "SKU is already used by another product"}, errs)
}

func TestCheck_WithoutLabelsReturnsKeys(t *testing.T) {
	d := domain.NewDraft("d1", domain.DefaultSession(), time.Now())

	errs, err := Check(context.Background(), services.NewDraftValidator(), nil, nil, d.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, services.MsgSKURequired, errs["sku"])
}
