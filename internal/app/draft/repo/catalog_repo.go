package repo

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	"github.com/murkotick/product-draft-service/internal/models/m_product"
)

// CatalogRepo is the Spanner implementation of the catalog write-side repository.
// It returns *spanner.Mutation objects but never applies them.
type CatalogRepo struct{}

func NewCatalogRepo() *CatalogRepo {
	return &CatalogRepo{}
}

// PublishMuts builds the insert mutations for the product row and all of its
// child rows. Child rows are interleaved under products, so the product
// mutation comes first.
func (r *CatalogRepo) PublishMuts(productID string, p domain.Product, now time.Time) []*spanner.Mutation {
	muts := []*spanner.Mutation{m_product.InsertMutation(m_product.TableProducts, buildProductValues(productID, p, now))}

	for _, t := range p.Translations {
		muts = append(muts, m_product.InsertMutation(m_product.TableTranslations, buildTranslationValues(productID, t)))
	}
	for _, pr := range p.Prices {
		muts = append(muts, m_product.InsertMutation(m_product.TablePrices, buildPriceValues(productID, pr)))
	}
	for _, values := range buildMediaValues(productID, p) {
		muts = append(muts, m_product.InsertMutation(m_product.TableMedia, values))
	}
	for _, v := range p.Variations {
		muts = append(muts, m_product.InsertMutation(m_product.TableVariants, buildVariantValues(productID, v)))
	}

	return muts
}

// buildProductValues is unexported so tests in the same package can inspect
// the map without relying on spanner.Mutation internals.
func buildProductValues(productID string, p domain.Product, now time.Time) map[string]interface{} {
	org := p.Organization
	return map[string]interface{}{
		m_product.ColProductID:     productID,
		m_product.ColSKU:           p.SKU,
		m_product.ColBarcode:       m_product.NullableStringPtr(p.Barcode),
		m_product.ColStatus:        string(p.Status),
		m_product.ColQuantity:      int64(p.Quantity),
		m_product.ColWeight:        m_product.NullableFloat64Ptr(p.Weight),
		m_product.ColIsActive:      p.IsActive,
		m_product.ColChargeTax:     p.ChargeTax,
		m_product.ColInStock:       p.InStock,
		m_product.ColBrandID:       m_product.NullableStringPtr(org.BrandID),
		m_product.ColCategoryIDs:   nonNil(org.CategoryIDs),
		m_product.ColVendorIDs:     nonNil(org.VendorIDs),
		m_product.ColStoreIDs:      nonNil(org.StoreIDs),
		m_product.ColCollectionIDs: nonNil(org.CollectionIDs),
		m_product.ColTags:          nonNil(org.Tags),
		m_product.ColCreatedAt:     now.UTC(),
	}
}

func buildTranslationValues(productID string, t domain.Translation) map[string]interface{} {
	return map[string]interface{}{
		m_product.ColProductID:       productID,
		m_product.ColLanguageID:      t.LanguageID,
		m_product.ColName:            t.Name,
		m_product.ColDescription:     m_product.NullableStringPtr(t.Description),
		m_product.ColMetaTitle:       m_product.NullableStringPtr(t.MetaTitle),
		m_product.ColMetaDescription: m_product.NullableStringPtr(t.MetaDescription),
		m_product.ColKeywords:        m_product.NullableStringPtr(t.Keywords),
	}
}

func buildPriceValues(productID string, pr domain.Price) map[string]interface{} {
	return map[string]interface{}{
		m_product.ColProductID:     productID,
		m_product.ColCurrencyID:    pr.CurrencyID,
		m_product.ColOriginMarket:  m_product.NullableString(pr.OriginMarket),
		m_product.ColPrice:         numeric(pr.Price),
		m_product.ColDiscountPrice: numeric(pr.DiscountPrice),
		m_product.ColComparePrice:  numeric(pr.ComparePrice),
		m_product.ColCost:          numeric(pr.Cost),
	}
}

// buildMediaValues numbers the main image 0 and the gallery from 1 on, in gallery order.
func buildMediaValues(productID string, p domain.Product) []map[string]interface{} {
	var out []map[string]interface{}
	position := int64(0)
	add := func(role string, m domain.Media) {
		out = append(out, map[string]interface{}{
			m_product.ColProductID: productID,
			m_product.ColPosition:  position,
			m_product.ColRole:      role,
			m_product.ColMediaType: m.Type,
			m_product.ColURL:       m.URL,
			m_product.ColAlt:       m_product.NullableString(m.Alt),
			m_product.ColTitle:     m_product.NullableString(m.Title),
			m_product.ColSortOrder: int64(m.SortOrder),
		})
		position++
	}

	if p.MainImage != nil {
		add(m_product.MediaRoleMain, *p.MainImage)
	} else {
		position++
	}
	for _, m := range p.GalleryImages {
		add(m_product.MediaRoleGallery, m)
	}
	return out
}

func buildVariantValues(productID string, v domain.Variant) map[string]interface{} {
	return map[string]interface{}{
		m_product.ColProductID:     productID,
		m_product.ColVariantID:     v.ID,
		m_product.ColSKU:           v.SKU,
		m_product.ColAttributes:    spanner.NullJSON{Value: v.Attributes, Valid: true},
		m_product.ColPrice:         numeric(v.Price),
		m_product.ColDiscountPrice: numeric(v.DiscountPrice),
		m_product.ColComparePrice:  numeric(v.ComparePrice),
		m_product.ColCost:          numeric(v.Cost),
		m_product.ColQuantity:      int64(v.Quantity),
		m_product.ColWeight:        m_product.NullableFloat64Ptr(v.Weight),
	}
}

func numeric(m *domain.Money) spanner.NullNumeric {
	if m == nil {
		return spanner.NullNumeric{}
	}
	return spanner.NullNumeric{Numeric: *m.Rat(), Valid: true}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
