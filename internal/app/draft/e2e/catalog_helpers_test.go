package e2e

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"
)

type outboxEvent struct {
	EventType     string
	AggregateType string
	Status        string
	Payload       string
}

type storedProduct struct {
	SKU      string
	Status   string
	Tags     []string
	Variants []string
}

func mustFetchOutboxEvents(ctx context.Context, t *testing.T, aggregateID string) []outboxEvent {
	t.Helper()

	stmt := spanner.Statement{
		SQL: `SELECT event_type, aggregate_type, status, payload
		      FROM outbox_events
		      WHERE aggregate_id = @id
		      ORDER BY created_at ASC, event_id ASC`,
		Params: map[string]interface{}{"id": aggregateID},
	}
	iter := spClient.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]outboxEvent, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out
		}
		require.NoError(t, err)
		var e outboxEvent
		require.NoError(t, row.Columns(&e.EventType, &e.AggregateType, &e.Status, &e.Payload))
		out = append(out, e)
	}
}

func mustFetchProduct(ctx context.Context, t *testing.T, productID string) storedProduct {
	t.Helper()

	row, err := spClient.Single().ReadRow(ctx, "products", spanner.Key{productID}, []string{"sku", "status", "tags"})
	require.NoError(t, err)
	var p storedProduct
	require.NoError(t, row.Columns(&p.SKU, &p.Status, &p.Tags))

	iter := spClient.Single().Query(ctx, spanner.Statement{
		SQL:    `SELECT sku FROM product_variants WHERE product_id = @id ORDER BY sku`,
		Params: map[string]interface{}{"id": productID},
	})
	defer iter.Stop()
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return p
		}
		require.NoError(t, err)
		var sku string
		require.NoError(t, row.Columns(&sku))
		p.Variants = append(p.Variants, sku)
	}
}
