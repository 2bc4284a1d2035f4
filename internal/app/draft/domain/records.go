package domain

import "strings"

// ProductStatus represents the publication state chosen for the product.
type ProductStatus string

const (
	// ProductStatusDraft indicates a product saved but not visible to shoppers.
	ProductStatusDraft ProductStatus = "DRAFT"

	// ProductStatusPublished indicates a product visible in the storefront.
	ProductStatusPublished ProductStatus = "PUBLISHED"

	// ProductStatusInactive indicates a product temporarily withdrawn.
	ProductStatusInactive ProductStatus = "INACTIVE"
)

// ParseProductStatus accepts the status names case-insensitively.
func ParseProductStatus(s string) (ProductStatus, error) {
	switch ProductStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case ProductStatusDraft:
		return ProductStatusDraft, nil
	case ProductStatusPublished:
		return ProductStatusPublished, nil
	case ProductStatusInactive:
		return ProductStatusInactive, nil
	}
	return "", ErrInvalidStatus
}

// Language is the language a draft is currently edited in.
// Translations are keyed by its Code.
type Language struct {
	ID   int
	Code string
	Name string
}

// Currency is the currency a draft is currently priced in.
// Prices are keyed by its ID.
type Currency struct {
	ID           string
	Code         string
	Symbol       string
	ExchangeRate float64
}

// Translation holds the localized texts of a product for one language.
type Translation struct {
	LanguageID      string
	Name            string
	Description     *string
	MetaTitle       *string
	MetaDescription *string
	Keywords        *string
}

// TranslationFields is a partial translation; nil fields are left untouched.
type TranslationFields struct {
	Name            *string
	Description     *string
	MetaTitle       *string
	MetaDescription *string
	Keywords        *string
}

func (t *Translation) merge(f TranslationFields) {
	if f.Name != nil {
		t.Name = *f.Name
	}
	if f.Description != nil {
		t.Description = stringPtr(*f.Description)
	}
	if f.MetaTitle != nil {
		t.MetaTitle = stringPtr(*f.MetaTitle)
	}
	if f.MetaDescription != nil {
		t.MetaDescription = stringPtr(*f.MetaDescription)
	}
	if f.Keywords != nil {
		t.Keywords = stringPtr(*f.Keywords)
	}
}

// Price holds the pricing of a product in one currency.
type Price struct {
	CurrencyID    string
	OriginMarket  string
	Price         *Money
	DiscountPrice *Money
	ComparePrice  *Money
	Cost          *Money
}

// PriceFields is a partial price; nil fields are left untouched.
type PriceFields struct {
	OriginMarket  *string
	Price         *Money
	DiscountPrice *Money
	ComparePrice  *Money
	Cost          *Money
}

func (p *Price) merge(f PriceFields) {
	if f.OriginMarket != nil {
		p.OriginMarket = *f.OriginMarket
	}
	if f.Price != nil {
		p.Price = f.Price
	}
	if f.DiscountPrice != nil {
		p.DiscountPrice = f.DiscountPrice
	}
	if f.ComparePrice != nil {
		p.ComparePrice = f.ComparePrice
	}
	if f.Cost != nil {
		p.Cost = f.Cost
	}
}

// Media is an already-resolved image reference.
type Media struct {
	Type      string
	URL       string
	Alt       string
	Title     string
	SortOrder int
}

// Attribute declares a product characteristic; Value is a comma-separated
// list of options, e.g. {Type: "Color", Value: "Red, Blue"}.
type Attribute struct {
	ID    string
	Type  string
	Value string
}

// Variant is one concrete attribute combination of the product.
type Variant struct {
	ID            string
	Attributes    map[string]string
	SKU           string
	Price         *Money
	DiscountPrice *Money
	ComparePrice  *Money
	Cost          *Money
	Quantity      int
	Weight        *float64
}

// VariantFields holds per-variant overrides; the SKU is not editable.
type VariantFields struct {
	Price         *Money
	DiscountPrice *Money
	ComparePrice  *Money
	Cost          *Money
	Quantity      *int
	Weight        *float64
}

// VariantTemplate carries the base pricing and inventory values copied into
// every generated variant.
type VariantTemplate struct {
	Price         *Money
	DiscountPrice *Money
	ComparePrice  *Money
	Cost          *Money
	Quantity      int
	Weight        *float64
}

// Organization groups the catalog placement of a product.
type Organization struct {
	CategoryIDs   []string
	VendorIDs     []string
	StoreIDs      []string
	CollectionIDs []string
	BrandID       *string
	Tags          []string
}

// OrganizationFields is a partial organization; nil fields are left untouched.
// An empty BrandID clears the brand.
type OrganizationFields struct {
	CategoryIDs   *[]string
	VendorIDs     *[]string
	StoreIDs      *[]string
	CollectionIDs *[]string
	BrandID       *string
	Tags          *[]string
}

// BasicInfo is a partial update of the identifying fields.
type BasicInfo struct {
	SKU     *string
	Barcode *string
	Status  *ProductStatus
}

// InventoryFields is a partial update of the inventory scalars.
type InventoryFields struct {
	Quantity  *int
	Weight    *float64
	IsActive  *bool
	ChargeTax *bool
	InStock   *bool
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

// uniqueIDs drops empty and repeated ids, keeping first occurrences.
func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
