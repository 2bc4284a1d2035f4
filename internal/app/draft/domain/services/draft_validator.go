package services

import (
	"fmt"
	"strings"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
)

// Message keys of the label dictionary used for validation errors.
const (
	MsgSKURequired         = "validation.sku_required"
	MsgSKUDuplicate        = "validation.sku_duplicate"
	MsgSKUTaken            = "validation.sku_taken"
	MsgTranslationRequired = "validation.translation_required"
	MsgNameRequired        = "validation.name_required"
	MsgPriceRequired       = "validation.price_required"
	MsgPricePositive       = "validation.price_positive"
	MsgDiscountBelowPrice  = "validation.discount_below_price"
	MsgCompareAbovePrice   = "validation.compare_above_price"
	MsgCostNonNegative     = "validation.cost_non_negative"
	MsgQuantityNonNegative = "validation.quantity_non_negative"
)

// Violation is one failed rule, addressed by a field path such as
// "prices.1.discountPrice". Key selects the localized message.
type Violation struct {
	Field string
	Key   string
}

// DraftValidator checks that a product is complete enough to be submitted.
type DraftValidator struct{}

func NewDraftValidator() *DraftValidator {
	return &DraftValidator{}
}

// Validate returns every violation found in p, in field order.
func (v *DraftValidator) Validate(p domain.Product) []Violation {
	var out []Violation

	if strings.TrimSpace(p.SKU) == "" {
		out = append(out, Violation{Field: "sku", Key: MsgSKURequired})
	}

	if len(p.Translations) == 0 {
		out = append(out, Violation{Field: "translations", Key: MsgTranslationRequired})
	}
	for _, t := range p.Translations {
		if strings.TrimSpace(t.Name) == "" {
			out = append(out, Violation{Field: fmt.Sprintf("translations.%s.name", t.LanguageID), Key: MsgNameRequired})
		}
	}

	if len(p.Prices) == 0 {
		out = append(out, Violation{Field: "prices", Key: MsgPriceRequired})
	}
	for _, pr := range p.Prices {
		prefix := "prices." + pr.CurrencyID
		out = append(out, checkPricing(prefix, pr.Price, pr.DiscountPrice, pr.ComparePrice, pr.Cost, true)...)
	}

	if p.Quantity < 0 {
		out = append(out, Violation{Field: "quantity", Key: MsgQuantityNonNegative})
	}

	seen := map[string]bool{}
	if sku := strings.TrimSpace(p.SKU); sku != "" {
		seen[sku] = true
	}
	for i, variant := range p.Variations {
		prefix := fmt.Sprintf("variations.%d", i)
		switch sku := strings.TrimSpace(variant.SKU); {
		case sku == "":
			out = append(out, Violation{Field: prefix + ".sku", Key: MsgSKURequired})
		case seen[sku]:
			out = append(out, Violation{Field: prefix + ".sku", Key: MsgSKUDuplicate})
		default:
			seen[sku] = true
		}

		out = append(out, checkPricing(prefix, variant.Price, variant.DiscountPrice, variant.ComparePrice, variant.Cost, false)...)
		if variant.Quantity < 0 {
			out = append(out, Violation{Field: prefix + ".quantity", Key: MsgQuantityNonNegative})
		}
	}

	return out
}

func checkPricing(prefix string, price, discount, compare, cost *domain.Money, priceRequired bool) []Violation {
	var out []Violation

	if price == nil {
		if priceRequired {
			out = append(out, Violation{Field: prefix + ".price", Key: MsgPricePositive})
		}
	} else if !price.IsPositive() {
		out = append(out, Violation{Field: prefix + ".price", Key: MsgPricePositive})
	}

	if discount != nil && (discount.IsNegative() || (price != nil && !discount.LessThan(price))) {
		out = append(out, Violation{Field: prefix + ".discountPrice", Key: MsgDiscountBelowPrice})
	}
	if compare != nil && price != nil && !compare.GreaterThan(price) {
		out = append(out, Violation{Field: prefix + ".comparePrice", Key: MsgCompareAbovePrice})
	}
	if cost != nil && cost.IsNegative() {
		out = append(out, Violation{Field: prefix + ".cost", Key: MsgCostNonNegative})
	}

	return out
}
