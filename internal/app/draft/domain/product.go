package domain

// Product is the business record authored by a draft: everything that ends
// up in the catalog once the draft is submitted.
type Product struct {
	Status        ProductStatus
	SKU           string
	Barcode       *string
	Translations  []Translation
	Prices        []Price
	MainImage     *Media
	GalleryImages []Media
	Quantity      int
	Weight        *float64
	IsActive      bool
	ChargeTax     bool
	InStock       bool
	Attributes    []Attribute
	Variations    []Variant
	Organization  Organization
}

// NewProduct returns the default-constructed product of a fresh draft.
func NewProduct() Product {
	return Product{
		Status:        ProductStatusDraft,
		Translations:  []Translation{},
		Prices:        []Price{},
		GalleryImages: []Media{},
		IsActive:      true,
		InStock:       true,
		Attributes:    []Attribute{},
		Variations:    []Variant{},
		Organization: Organization{
			CategoryIDs:   []string{},
			VendorIDs:     []string{},
			StoreIDs:      []string{},
			CollectionIDs: []string{},
			Tags:          []string{},
		},
	}
}

// Translation returns the translation for languageID, if any.
func (p Product) Translation(languageID string) (Translation, bool) {
	if i := p.translationIndex(languageID); i >= 0 {
		return p.Translations[i], true
	}
	return Translation{}, false
}

// Price returns the price for currencyID, if any.
func (p Product) Price(currencyID string) (Price, bool) {
	if i := p.priceIndex(currencyID); i >= 0 {
		return p.Prices[i], true
	}
	return Price{}, false
}

func (p Product) translationIndex(languageID string) int {
	for i := range p.Translations {
		if p.Translations[i].LanguageID == languageID {
			return i
		}
	}
	return -1
}

func (p Product) priceIndex(currencyID string) int {
	for i := range p.Prices {
		if p.Prices[i].CurrencyID == currencyID {
			return i
		}
	}
	return -1
}

func (p Product) variantIndex(id string) int {
	for i := range p.Variations {
		if p.Variations[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy that shares no mutable state with p.
// Money values and string pointers are never mutated in place, so they are shared.
func (p Product) Clone() Product {
	out := p
	out.Translations = append([]Translation{}, p.Translations...)
	out.Prices = append([]Price{}, p.Prices...)
	out.GalleryImages = append([]Media{}, p.GalleryImages...)
	out.Attributes = append([]Attribute{}, p.Attributes...)
	if p.MainImage != nil {
		m := *p.MainImage
		out.MainImage = &m
	}
	out.Variations = make([]Variant, len(p.Variations))
	for i, v := range p.Variations {
		out.Variations[i] = v.Clone()
	}
	out.Organization = Organization{
		CategoryIDs:   append([]string{}, p.Organization.CategoryIDs...),
		VendorIDs:     append([]string{}, p.Organization.VendorIDs...),
		StoreIDs:      append([]string{}, p.Organization.StoreIDs...),
		CollectionIDs: append([]string{}, p.Organization.CollectionIDs...),
		BrandID:       p.Organization.BrandID,
		Tags:          append([]string{}, p.Organization.Tags...),
	}
	return out
}

// Clone returns a copy of v with its own attribute map.
func (v Variant) Clone() Variant {
	out := v
	out.Attributes = make(map[string]string, len(v.Attributes))
	for k, val := range v.Attributes {
		out.Attributes[k] = val
	}
	return out
}

// Session is the UI bookkeeping of an authoring session. It lives next to
// the Product but is never part of what gets submitted.
type Session struct {
	ActiveLanguage Language
	ActiveCurrency Currency
	Submitting     bool
	Errors         map[string]string
}

// DefaultSession returns English / US dollar editing context.
func DefaultSession() Session {
	return Session{
		ActiveLanguage: Language{ID: 1, Code: "en", Name: "English"},
		ActiveCurrency: Currency{ID: "1", Code: "USD", Symbol: "$", ExchangeRate: 1.0},
		Errors:         map[string]string{},
	}
}

func (s Session) clone() Session {
	out := s
	out.Errors = make(map[string]string, len(s.Errors))
	for k, v := range s.Errors {
		out.Errors[k] = v
	}
	return out
}

// Snapshot is a read-only view of a draft composed for rendering.
type Snapshot struct {
	DraftID            string
	Product            Product
	Session            Session
	Dirty              bool
	CurrentTranslation *Translation
	CurrentPrice       *Price
}
