package services

import (
	"math/big"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
)

// PricingCalculator is a domain service deriving display figures from a
// price record. Domain services are used when business logic doesn't
// naturally fit within a single aggregate.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// EffectivePrice returns what a shopper pays: the discount price when it is
// set, positive and below the regular price, otherwise the regular price.
// Returns nil when no regular price is set.
func (pc *PricingCalculator) EffectivePrice(p domain.Price) *domain.Money {
	if p.Price == nil {
		return nil
	}
	if p.DiscountPrice != nil && p.DiscountPrice.IsPositive() && p.DiscountPrice.LessThan(p.Price) {
		return p.DiscountPrice
	}
	return p.Price
}

// Profit returns the effective price minus the cost, or nil when either is unknown.
func (pc *PricingCalculator) Profit(p domain.Price) *domain.Money {
	effective := pc.EffectivePrice(p)
	if effective == nil || p.Cost == nil {
		return nil
	}
	return effective.Subtract(p.Cost)
}

// MarginPercentage returns profit as a percentage of the effective price,
// rounded to two decimals. ok is false when it cannot be computed.
func (pc *PricingCalculator) MarginPercentage(p domain.Price) (margin string, ok bool) {
	profit := pc.Profit(p)
	if profit == nil {
		return "", false
	}
	ratio := profit.Ratio(pc.EffectivePrice(p))
	if ratio == nil {
		return "", false
	}
	return new(big.Rat).Mul(ratio, big.NewRat(100, 1)).FloatString(2), true
}
