package queries

import (
	"context"
	"strings"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
)

// SpannerCatalogReadModel is an infrastructure adapter that satisfies
// contracts.CatalogReadModel by querying the catalog tables directly.
type SpannerCatalogReadModel struct {
	Client *spanner.Client
}

func NewSpannerCatalogReadModel(client *spanner.Client) *SpannerCatalogReadModel {
	return &SpannerCatalogReadModel{Client: client}
}

// TakenSKUs looks the SKUs up in both products and product_variants.
func (rm *SpannerCatalogReadModel) TakenSKUs(ctx context.Context, skus []string) (map[string]bool, error) {
	wanted := make([]string, 0, len(skus))
	for _, s := range skus {
		if s = strings.TrimSpace(s); s != "" {
			wanted = append(wanted, s)
		}
	}
	taken := make(map[string]bool)
	if len(wanted) == 0 {
		return taken, nil
	}

	stmt := spanner.Statement{
		SQL: `SELECT sku FROM products WHERE sku IN UNNEST(@skus)
		      UNION DISTINCT
		      SELECT sku FROM product_variants WHERE sku IN UNNEST(@skus)`,
		Params: map[string]interface{}{"skus": wanted},
	}

	iter := rm.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return taken, nil
		}
		if err != nil {
			return nil, err
		}
		var sku string
		if err := row.Columns(&sku); err != nil {
			return nil, err
		}
		taken[sku] = true
	}
}
