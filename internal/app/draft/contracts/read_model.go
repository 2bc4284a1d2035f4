package contracts

import "context"

// CatalogReadModel answers lookups against products already in the catalog.
type CatalogReadModel interface {
	// TakenSKUs returns the subset of skus already used by catalog products or variants.
	TakenSKUs(ctx context.Context, skus []string) (map[string]bool, error)
}

// Labels resolves localized strings by language code and key.
type Labels interface {
	Lookup(lang, key string) string
}
