package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
)

func TestEffectivePrice(t *testing.T) {
	pc := NewPricingCalculator()

	tests := []struct {
		name  string
		price domain.Price
		want  string
	}{
		{"regular only", domain.Price{Price: domain.NewMoney(20, 1)}, "20.00"},
		{"discount below price", domain.Price{Price: domain.NewMoney(20, 1), DiscountPrice: domain.NewMoney(15, 1)}, "15.00"},
		{"discount above price", domain.Price{Price: domain.NewMoney(20, 1), DiscountPrice: domain.NewMoney(25, 1)}, "20.00"},
		{"zero discount", domain.Price{Price: domain.NewMoney(20, 1), DiscountPrice: domain.Zero()}, "20.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pc.EffectivePrice(tt.price).String())
		})
	}

	assert.Nil(t, pc.EffectivePrice(domain.Price{DiscountPrice: domain.NewMoney(5, 1)}))
}

func TestProfitAndMargin(t *testing.T) {
	pc := NewPricingCalculator()
	p := domain.Price{
		Price:         domain.NewMoney(20, 1),
		DiscountPrice: domain.NewMoney(16, 1),
		Cost:          domain.NewMoney(12, 1),
	}

	assert.Equal(t, "4.00", pc.Profit(p).String())

	margin, ok := pc.MarginPercentage(p)
	assert.True(t, ok)
	assert.Equal(t, "25.00", margin)
}

func TestMargin_Unavailable(t *testing.T) {
	pc := NewPricingCalculator()

	_, ok := pc.MarginPercentage(domain.Price{Price: domain.NewMoney(20, 1)})
	assert.False(t, ok)
	assert.Nil(t, pc.Profit(domain.Price{Cost: domain.NewMoney(1, 1)}))

	_, ok = pc.MarginPercentage(domain.Price{Price: domain.Zero(), Cost: domain.Zero()})
	assert.False(t, ok)
}
