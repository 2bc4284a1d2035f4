package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	"github.com/murkotick/product-draft-service/internal/pkg/clock"
)

func newTestStore() (*Store, *clock.FakeClock) {
	clk := clock.NewFake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	clk.Step = time.Minute
	return New(domain.NewDraft("d1", domain.DefaultSession(), clk.Now()), clk), clk
}

func TestStore_PublishesAfterMutation(t *testing.T) {
	s, _ := newTestStore()
	var got []domain.Snapshot
	s.Subscribe(func(snap domain.Snapshot) { got = append(got, snap) })

	sku := "MUG"
	s.SetBasicInfo(domain.BasicInfo{SKU: &sku})

	require.Len(t, got, 1)
	assert.Equal(t, "MUG", got[0].Product.SKU)
	assert.True(t, got[0].Dirty)
	assert.Equal(t, "d1", got[0].DraftID)
}

func TestStore_NoOpsDoNotPublish(t *testing.T) {
	s, _ := newTestStore()
	calls := 0
	s.Subscribe(func(domain.Snapshot) { calls++ })

	assert.False(t, s.RemoveGalleryImageAt(0))
	assert.False(t, s.ClearMainImage())
	assert.False(t, s.RemoveTag("missing"))
	assert.False(t, s.ApplyGeneratedVariants(nil))
	assert.False(t, s.UpdateVariant("missing", domain.VariantFields{}))
	assert.Zero(t, calls)

	assert.True(t, s.AddTag("summer"))
	assert.Equal(t, 1, calls)
}

func TestStore_Unsubscribe(t *testing.T) {
	s, _ := newTestStore()
	var first, second int
	unsubscribe := s.Subscribe(func(domain.Snapshot) { first++ })
	s.Subscribe(func(domain.Snapshot) { second++ })

	s.AddTag("a")
	unsubscribe()
	unsubscribe()
	s.AddTag("b")

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestStore_ListenersGetIndependentSnapshots(t *testing.T) {
	s, _ := newTestStore()
	s.SetErrors(map[string]string{"sku": "validation.sku_required"})

	s.Subscribe(func(snap domain.Snapshot) {
		snap.Session.Errors["sku"] = "overwritten"
		snap.Product.Variations[0].Attributes["Color"] = "Blue"
	})
	var second domain.Snapshot
	s.Subscribe(func(snap domain.Snapshot) { second = snap })

	s.SetVariations([]domain.Variant{{ID: "v1", SKU: "RED-001", Attributes: map[string]string{"Color": "Red"}}})

	assert.Equal(t, "validation.sku_required", second.Session.Errors["sku"])
	assert.Equal(t, "Red", second.Product.Variations[0].Attributes["Color"])
	assert.Equal(t, "Red", s.Snapshot().Product.Variations[0].Attributes["Color"])
}

func TestStore_ListenerMayUnsubscribeItself(t *testing.T) {
	s, _ := newTestStore()
	calls := 0
	var unsubscribe func()
	unsubscribe = s.Subscribe(func(domain.Snapshot) {
		calls++
		unsubscribe()
	})

	s.AddTag("a")
	s.AddTag("b")

	assert.Equal(t, 1, calls)
}

func TestStore_DrainEvents(t *testing.T) {
	s, clk := newTestStore()
	start := clk.Now()

	s.AddTag("a")
	events := s.DrainEvents()

	require.Len(t, events, 2)
	assert.Equal(t, "draft.started", events[0].EventType())
	assert.Equal(t, "draft.changed", events[1].EventType())
	assert.True(t, events[1].OccurredAt().After(start))
	assert.Empty(t, s.DrainEvents())
}

func TestStore_ResetDraft(t *testing.T) {
	s, _ := newTestStore()
	s.SetActiveCurrency(domain.Currency{ID: "2", Code: "EUR"})
	s.UpsertPrice("2", domain.PriceFields{Price: domain.NewMoney(5, 1)})
	s.SetSubmitting(true)

	var last domain.Snapshot
	s.Subscribe(func(snap domain.Snapshot) { last = snap })
	s.ResetDraft()

	assert.False(t, last.Dirty)
	assert.False(t, s.IsSubmitting())
	assert.Empty(t, last.Product.Prices)
	assert.Equal(t, "USD", last.Session.ActiveCurrency.Code)
	assert.Nil(t, last.CurrentPrice)
}

func TestStore_VariantTemplate(t *testing.T) {
	s, _ := newTestStore()
	qty := 5
	s.UpsertPrice("1", domain.PriceFields{Price: domain.NewMoney(30, 1)})
	s.SetInventory(domain.InventoryFields{Quantity: &qty})

	tpl := s.VariantTemplate()
	assert.Equal(t, "30.00", tpl.Price.String())
	assert.Equal(t, 5, tpl.Quantity)
	assert.Equal(t, "d1", s.ID())
}
