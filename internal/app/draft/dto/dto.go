package dto

import (
	"sort"

	"github.com/murkotick/product-draft-service/internal/app/draft/contracts"
	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	"github.com/murkotick/product-draft-service/internal/app/draft/domain/services"
)

// DraftDTO is the snapshot handed to the admin UI: the product being
// authored and the session bookkeeping, composed side by side.
// Money values are decimal strings with two fraction digits.
type DraftDTO struct {
	DraftID            string          `json:"draftId"`
	Product            ProductDTO      `json:"product"`
	Session            SessionDTO      `json:"session"`
	CurrentTranslation *TranslationDTO `json:"currentTranslation"`
	CurrentPrice       *PriceDTO       `json:"currentPrice"`
}

type ProductDTO struct {
	Status        string           `json:"status"`
	StatusLabel   string           `json:"statusLabel"`
	SKU           string           `json:"sku"`
	Barcode       *string          `json:"barcode,omitempty"`
	Translations  []TranslationDTO `json:"translations"`
	Prices        []PriceDTO       `json:"prices"`
	MainImage     *MediaDTO        `json:"mainImage,omitempty"`
	GalleryImages []MediaDTO       `json:"galleryImages"`
	Quantity      int              `json:"quantity"`
	Weight        *float64         `json:"weight,omitempty"`
	IsActive      bool             `json:"isActive"`
	ChargeTax     bool             `json:"chargeTax"`
	InStock       bool             `json:"inStock"`
	Attributes    []AttributeDTO   `json:"attributes"`
	Variations    []VariantDTO     `json:"variations"`
	CategoryIDs   []string         `json:"categoryIds"`
	VendorIDs     []string         `json:"vendorIds"`
	StoreIDs      []string         `json:"storeIds"`
	CollectionIDs []string         `json:"collectionIds"`
	BrandID       *string          `json:"brandId,omitempty"`
	Tags          []string         `json:"tags"`
}

type TranslationDTO struct {
	LanguageID      string  `json:"languageId"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	MetaTitle       *string `json:"metaTitle,omitempty"`
	MetaDescription *string `json:"metaDescription,omitempty"`
	Keywords        *string `json:"keywords,omitempty"`
}

type PriceDTO struct {
	CurrencyID    string  `json:"currencyId"`
	OriginMarket  string  `json:"originMarket"`
	Price         *string `json:"price,omitempty"`
	DiscountPrice *string `json:"discountPrice,omitempty"`
	ComparePrice  *string `json:"comparePrice,omitempty"`
	Cost          *string `json:"cost,omitempty"`

	// Derived by the pricing calculator.
	EffectivePrice *string `json:"effectivePrice,omitempty"`
	Profit         *string `json:"profit,omitempty"`
	MarginPercent  *string `json:"marginPercent,omitempty"`
}

type MediaDTO struct {
	Type      string `json:"type"`
	URL       string `json:"url"`
	Alt       string `json:"alt,omitempty"`
	Title     string `json:"title,omitempty"`
	SortOrder int    `json:"sortOrder"`
}

type AttributeDTO struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

type VariantDTO struct {
	ID            string            `json:"id"`
	Attributes    map[string]string `json:"attributes"`
	SKU           string            `json:"sku"`
	Price         *string           `json:"price,omitempty"`
	DiscountPrice *string           `json:"discountPrice,omitempty"`
	ComparePrice  *string           `json:"comparePrice,omitempty"`
	Cost          *string           `json:"cost,omitempty"`
	Quantity      int               `json:"quantity"`
	Weight        *float64          `json:"weight,omitempty"`
}

type SessionDTO struct {
	ActiveLanguage LanguageDTO       `json:"activeLanguage"`
	ActiveCurrency CurrencyDTO       `json:"activeCurrency"`
	IsDirty        bool              `json:"isDirty"`
	IsSubmitting   bool              `json:"isSubmitting"`
	Errors         map[string]string `json:"errors"`
}

type LanguageDTO struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type CurrencyDTO struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Symbol       string  `json:"symbol"`
	ExchangeRate float64 `json:"exchangeRate"`
}

// Mapper turns domain snapshots into DTOs, resolving labels in the
// snapshot's active language.
type Mapper struct {
	labels  contracts.Labels
	pricing *services.PricingCalculator
}

func NewMapper(labels contracts.Labels, pricing *services.PricingCalculator) *Mapper {
	if pricing == nil {
		pricing = services.NewPricingCalculator()
	}
	return &Mapper{labels: labels, pricing: pricing}
}

func (m *Mapper) Draft(s domain.Snapshot) *DraftDTO {
	p := s.Product
	out := &DraftDTO{
		DraftID: s.DraftID,
		Product: ProductDTO{
			Status:        string(p.Status),
			StatusLabel:   m.statusLabel(s.Session.ActiveLanguage.Code, p.Status),
			SKU:           p.SKU,
			Barcode:       p.Barcode,
			Translations:  make([]TranslationDTO, 0, len(p.Translations)),
			Prices:        make([]PriceDTO, 0, len(p.Prices)),
			GalleryImages: make([]MediaDTO, 0, len(p.GalleryImages)),
			Quantity:      p.Quantity,
			Weight:        p.Weight,
			IsActive:      p.IsActive,
			ChargeTax:     p.ChargeTax,
			InStock:       p.InStock,
			Attributes:    make([]AttributeDTO, 0, len(p.Attributes)),
			Variations:    make([]VariantDTO, 0, len(p.Variations)),
			CategoryIDs:   p.Organization.CategoryIDs,
			VendorIDs:     p.Organization.VendorIDs,
			StoreIDs:      p.Organization.StoreIDs,
			CollectionIDs: p.Organization.CollectionIDs,
			BrandID:       p.Organization.BrandID,
			Tags:          p.Organization.Tags,
		},
		Session: SessionDTO{
			ActiveLanguage: LanguageDTO(s.Session.ActiveLanguage),
			ActiveCurrency: CurrencyDTO(s.Session.ActiveCurrency),
			IsDirty:        s.Dirty,
			IsSubmitting:   s.Session.Submitting,
			Errors:         s.Session.Errors,
		},
	}

	for _, t := range p.Translations {
		out.Product.Translations = append(out.Product.Translations, TranslationDTO(t))
	}
	for _, pr := range p.Prices {
		out.Product.Prices = append(out.Product.Prices, m.price(pr))
	}
	if p.MainImage != nil {
		mi := MediaDTO(*p.MainImage)
		out.Product.MainImage = &mi
	}
	for _, g := range p.GalleryImages {
		out.Product.GalleryImages = append(out.Product.GalleryImages, MediaDTO(g))
	}
	for _, a := range p.Attributes {
		out.Product.Attributes = append(out.Product.Attributes, AttributeDTO(a))
	}
	for _, v := range p.Variations {
		out.Product.Variations = append(out.Product.Variations, VariantDTO{
			ID:            v.ID,
			Attributes:    v.Attributes,
			SKU:           v.SKU,
			Price:         money(v.Price),
			DiscountPrice: money(v.DiscountPrice),
			ComparePrice:  money(v.ComparePrice),
			Cost:          money(v.Cost),
			Quantity:      v.Quantity,
			Weight:        v.Weight,
		})
	}

	if s.CurrentTranslation != nil {
		t := TranslationDTO(*s.CurrentTranslation)
		out.CurrentTranslation = &t
	}
	if s.CurrentPrice != nil {
		pr := m.price(*s.CurrentPrice)
		out.CurrentPrice = &pr
	}

	return out
}

// DraftSummaryDTO is one row of the open drafts list.
type DraftSummaryDTO struct {
	DraftID      string   `json:"draftId"`
	SKU          string   `json:"sku"`
	Name         string   `json:"name"`
	Status       string   `json:"status"`
	StatusLabel  string   `json:"statusLabel"`
	IsDirty      bool     `json:"isDirty"`
	IsSubmitting bool     `json:"isSubmitting"`
	ErrorFields  []string `json:"errorFields"`
}

// Summary condenses a snapshot; Name is the translation in the active language.
func (m *Mapper) Summary(s domain.Snapshot) *DraftSummaryDTO {
	out := &DraftSummaryDTO{
		DraftID:      s.DraftID,
		SKU:          s.Product.SKU,
		Status:       string(s.Product.Status),
		StatusLabel:  m.statusLabel(s.Session.ActiveLanguage.Code, s.Product.Status),
		IsDirty:      s.Dirty,
		IsSubmitting: s.Session.Submitting,
		ErrorFields:  ErrorFields(s.Session.Errors),
	}
	if s.CurrentTranslation != nil {
		out.Name = s.CurrentTranslation.Name
	}
	return out
}

// ErrorFields returns the keys of an error mapping in lexical order.
func ErrorFields(errs map[string]string) []string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Mapper) price(pr domain.Price) PriceDTO {
	out := PriceDTO{
		CurrencyID:     pr.CurrencyID,
		OriginMarket:   pr.OriginMarket,
		Price:          money(pr.Price),
		DiscountPrice:  money(pr.DiscountPrice),
		ComparePrice:   money(pr.ComparePrice),
		Cost:           money(pr.Cost),
		EffectivePrice: money(m.pricing.EffectivePrice(pr)),
		Profit:         money(m.pricing.Profit(pr)),
	}
	if margin, ok := m.pricing.MarginPercentage(pr); ok {
		out.MarginPercent = &margin
	}
	return out
}

func (m *Mapper) statusLabel(lang string, status domain.ProductStatus) string {
	if m.labels == nil {
		return string(status)
	}
	return m.labels.Lookup(lang, "status."+string(status))
}

func money(m *domain.Money) *string {
	if m == nil {
		return nil
	}
	s := m.String()
	return &s
}
