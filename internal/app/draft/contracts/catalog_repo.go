package contracts

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
)

// CatalogRepo is the write-side repository of the product catalog a draft
// is submitted to. Methods return Spanner mutations; they do not apply them.
type CatalogRepo interface {
	// PublishMuts returns the mutations inserting p as catalog product productID
	// together with its translations, prices, media and variants.
	PublishMuts(productID string, p domain.Product, now time.Time) []*spanner.Mutation
}
