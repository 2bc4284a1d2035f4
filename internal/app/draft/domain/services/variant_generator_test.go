package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("v%d", n)
	}
}

func TestGenerate_CartesianProductInInputOrder(t *testing.T) {
	g := NewVariantGenerator(sequentialIDs())
	attrs := []domain.Attribute{
		{ID: "a1", Type: "Color", Value: "Red, Blue"},
		{ID: "a2", Type: "Size", Value: "S, M"},
	}

	variants, err := g.Generate(attrs, domain.VariantTemplate{})
	require.NoError(t, err)

	require.Len(t, variants, 4)
	want := []struct {
		color, size, sku string
	}{
		{"Red", "S", "RED-S-001"},
		{"Red", "M", "RED-M-002"},
		{"Blue", "S", "BLU-S-003"},
		{"Blue", "M", "BLU-M-004"},
	}
	for i, w := range want {
		assert.Equal(t, fmt.Sprintf("v%d", i+1), variants[i].ID)
		assert.Equal(t, map[string]string{"Color": w.color, "Size": w.size}, variants[i].Attributes)
		assert.Equal(t, w.sku, variants[i].SKU)
	}
}

func TestGenerate_CountIsProductOfOptions(t *testing.T) {
	g := NewVariantGenerator(nil)
	attrs := []domain.Attribute{
		{Type: "Color", Value: "Red, Blue, Green"},
		{Type: "Size", Value: "S, M"},
		{Type: "Material", Value: "Cotton, Linen"},
	}

	variants, err := g.Generate(attrs, domain.VariantTemplate{})
	require.NoError(t, err)
	require.Len(t, variants, 12)

	skus := map[string]bool{}
	ids := map[string]bool{}
	for _, v := range variants {
		skus[v.SKU] = true
		ids[v.ID] = true
	}
	assert.Len(t, skus, 12)
	assert.Len(t, ids, 12)
}

func TestGenerate_SingleAttribute(t *testing.T) {
	g := NewVariantGenerator(sequentialIDs())

	variants, err := g.Generate([]domain.Attribute{{Type: "Size", Value: "S,M,L"}}, domain.VariantTemplate{})
	require.NoError(t, err)

	require.Len(t, variants, 3)
	assert.Equal(t, "L-003", variants[2].SKU)
}

func TestGenerate_NoValidAttributes(t *testing.T) {
	g := NewVariantGenerator(nil)

	variants, err := g.Generate(nil, domain.VariantTemplate{})
	require.NoError(t, err)
	assert.Nil(t, variants)

	variants, err = g.Generate([]domain.Attribute{
		{Type: "Color", Value: ""},
		{Type: "", Value: "Red"},
		{Type: "Size", Value: " , ,"},
	}, domain.VariantTemplate{})
	require.NoError(t, err)
	assert.Nil(t, variants)
}

func TestGenerate_CopiesTemplate(t *testing.T) {
	g := NewVariantGenerator(nil)
	w := 0.4
	base := domain.VariantTemplate{
		Price:    domain.NewMoney(25, 1),
		Cost:     domain.NewMoney(10, 1),
		Quantity: 3,
		Weight:   &w,
	}

	variants, err := g.Generate([]domain.Attribute{{Type: "Color", Value: "Red, Blue"}}, base)
	require.NoError(t, err)

	require.Len(t, variants, 2)
	for _, v := range variants {
		assert.Equal(t, "25.00", v.Price.String())
		assert.Equal(t, "10.00", v.Cost.String())
		assert.Nil(t, v.DiscountPrice)
		assert.Equal(t, 3, v.Quantity)
		require.NotNil(t, v.Weight)
		assert.Equal(t, 0.4, *v.Weight)
	}
	*variants[0].Weight = 9
	assert.Equal(t, 0.4, *variants[1].Weight)
}

func TestParseDimensions_KeepsRepeatedEntries(t *testing.T) {
	dims := ParseDimensions([]domain.Attribute{
		{Type: "Color", Value: "Red, Red, Blue"},
		{Type: "Size", Value: "S"},
		{Type: " Color ", Value: "Blue, Green"},
	})

	require.Len(t, dims, 3)
	assert.Equal(t, Dimension{Type: "Color", Options: []string{"Red", "Red", "Blue"}}, dims[0])
	assert.Equal(t, Dimension{Type: "Size", Options: []string{"S"}}, dims[1])
	assert.Equal(t, Dimension{Type: "Color", Options: []string{"Blue", "Green"}}, dims[2])
}

func TestGenerate_CountHoldsForRepeatedEntries(t *testing.T) {
	g := NewVariantGenerator(nil)
	attrs := []domain.Attribute{
		{Type: "Color", Value: "Red, Red, Blue"},
		{Type: "Size", Value: "S"},
		{Type: "Color", Value: "Blue, Green"},
	}

	variants, err := g.Generate(attrs, domain.VariantTemplate{})
	require.NoError(t, err)
	require.Len(t, variants, 3*1*2)

	skus := map[string]bool{}
	for _, v := range variants {
		skus[v.SKU] = true
	}
	assert.Len(t, skus, 6)
	assert.Equal(t, "RED-S-BLU-001", variants[0].SKU)
	assert.Equal(t, map[string]string{"Color": "Blue", "Size": "S"}, variants[0].Attributes)
}

func binaryAttributes(n int) []domain.Attribute {
	attrs := make([]domain.Attribute, n)
	for i := range attrs {
		attrs[i] = domain.Attribute{Type: fmt.Sprintf("T%d", i), Value: "A, B"}
	}
	return attrs
}

func TestGenerate_RejectsTooManyCombinations(t *testing.T) {
	g := NewVariantGenerator(nil)

	for _, n := range []int{14, 30, 63, 64} {
		variants, err := g.Generate(binaryAttributes(n), domain.VariantTemplate{})
		assert.ErrorIs(t, err, domain.ErrTooManyVariants, "%d attributes", n)
		assert.Nil(t, variants)
	}

	// 2^13 = 8192 is under the cap.
	variants, err := g.Generate(binaryAttributes(13), domain.VariantTemplate{})
	require.NoError(t, err)
	assert.Len(t, variants, 8192)
}

func TestCombinationCount(t *testing.T) {
	n, err := CombinationCount([]Dimension{{Type: "A", Options: make([]string, 100)}, {Type: "B", Options: make([]string, 100)}})
	require.NoError(t, err)
	assert.Equal(t, MaxVariants, n)

	_, err = CombinationCount([]Dimension{{Type: "A", Options: make([]string, MaxVariants+1)}})
	assert.ErrorIs(t, err, domain.ErrTooManyVariants)

	_, err = CombinationCount([]Dimension{{Type: "A", Options: make([]string, 101)}, {Type: "B", Options: make([]string, 100)}})
	assert.ErrorIs(t, err, domain.ErrTooManyVariants)
}

func TestDeriveSKU(t *testing.T) {
	tests := []struct {
		values []string
		index  int
		want   string
	}{
		{[]string{"Red", "S"}, 0, "RED-S-001"},
		{[]string{"Blue", "Medium"}, 3, "BLU-MED-004"},
		{[]string{"xl"}, 41, "XL-042"},
		{[]string{"Écru"}, 0, "ÉCR-001"},
		{nil, 9, "010"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveSKU(tt.values, tt.index))
	}
}
