package e2e

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	"github.com/murkotick/product-draft-service/internal/app/draft/usecases/generate_variants"
	"github.com/murkotick/product-draft-service/internal/app/draft/usecases/start_draft"
	"github.com/murkotick/product-draft-service/internal/app/draft/usecases/submit_draft"
)

func uniqueSKU(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}

func startFilledDraft(ctx context.Context, t *testing.T, sku string) string {
	t.Helper()

	id, err := startUC.Execute(ctx, start_draft.Request{})
	require.NoError(t, err)

	name := "Linen Shirt"
	require.NoError(t, editUC.SetBasicInfo(ctx, id, domain.BasicInfo{SKU: &sku}))
	require.NoError(t, editUC.UpsertTranslation(ctx, id, "en", domain.TranslationFields{Name: &name}))
	require.NoError(t, editUC.UpsertPrice(ctx, id, "1", domain.PriceFields{
		Price: domain.NewMoney(4999, 100),
		Cost:  domain.NewMoney(2000, 100),
	}))
	_, err = editUC.AddTag(ctx, id, "summer")
	require.NoError(t, err)
	return id
}

func TestSubmitFlow_PersistsProductAndOutbox(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sku := uniqueSKU("SHIRT")
	id := startFilledDraft(ctx, t, sku)

	count, err := generateUC.Execute(ctx, generate_variants.Request{
		DraftID: id,
		Attributes: []domain.Attribute{
			{ID: "a1", Type: "Color", Value: "Red, Blue"},
			{ID: "a2", Type: "Size", Value: "S, M"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 4, count)

	resp, err := submitUC.Execute(ctx, submit_draft.Request{DraftID: id, Publish: true})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ProductID)

	p := mustFetchProduct(ctx, t, resp.ProductID)
	assert.Equal(t, sku, p.SKU)
	assert.Equal(t, "PUBLISHED", p.Status)
	assert.Equal(t, []string{"summer"}, p.Tags)
	assert.Equal(t, []string{"BLU-M-004", "BLU-S-003", "RED-M-002", "RED-S-001"}, p.Variants)

	events := mustFetchOutboxEvents(ctx, t, resp.ProductID)
	require.Len(t, events, 1)
	assert.Equal(t, "product.submitted", events[0].EventType)
	assert.Equal(t, "product", events[0].AggregateType)
	assert.Equal(t, "pending", events[0].Status)
	assert.Contains(t, events[0].Payload, sku)
}

func TestSubmitFlow_RejectsSKUAlreadyInCatalog(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sku := uniqueSKU("MUG")
	first := startFilledDraft(ctx, t, sku)
	_, err := submitUC.Execute(ctx, submit_draft.Request{DraftID: first})
	require.NoError(t, err)

	taken, err := readModel.TakenSKUs(ctx, []string{sku, "NOT-THERE"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{sku: true}, taken)

	second := startFilledDraft(ctx, t, sku)
	resp, err := submitUC.Execute(ctx, submit_draft.Request{DraftID: second})
	require.ErrorIs(t, err, domain.ErrDraftInvalid)
	assert.Equal(t, "SKU is already used by another product", resp.Errors["sku"])
}
