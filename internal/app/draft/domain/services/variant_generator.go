package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
)

// skuSegmentLength is how many characters of each option value go into a SKU.
const skuSegmentLength = 3

// MaxVariants caps the combinations one generation may produce.
const MaxVariants = 10000

// Dimension is one attribute declaration with its ordered option list.
type Dimension struct {
	Type    string
	Options []string
}

// VariantGenerator expands attribute declarations into one variant per
// combination of options. It is a pure function of its input apart from
// the ids it assigns.
type VariantGenerator struct {
	newID func() string
}

// NewVariantGenerator creates a generator. newID defaults to random UUIDs.
func NewVariantGenerator(newID func() string) *VariantGenerator {
	if newID == nil {
		newID = uuid.NewString
	}
	return &VariantGenerator{newID: newID}
}

// Generate returns the Cartesian product of the valid attributes in input
// order: earlier types vary slower, later types vary faster. Pricing and
// inventory values are copied from base. No valid attribute yields nil.
// Combinations above MaxVariants are rejected with domain.ErrTooManyVariants.
func (g *VariantGenerator) Generate(attrs []domain.Attribute, base domain.VariantTemplate) ([]domain.Variant, error) {
	dims := ParseDimensions(attrs)
	if len(dims) == 0 {
		return nil, nil
	}

	total, err := CombinationCount(dims)
	if err != nil {
		return nil, err
	}

	variants := make([]domain.Variant, 0, total)
	picks := make([]int, len(dims))
	values := make([]string, len(dims))
	for i := 0; i < total; i++ {
		combo := make(map[string]string, len(dims))
		for j, d := range dims {
			values[j] = d.Options[picks[j]]
			combo[d.Type] = values[j]
		}

		variants = append(variants, domain.Variant{
			ID:            g.newID(),
			Attributes:    combo,
			SKU:           DeriveSKU(values, i),
			Price:         base.Price,
			DiscountPrice: base.DiscountPrice,
			ComparePrice:  base.ComparePrice,
			Cost:          base.Cost,
			Quantity:      base.Quantity,
			Weight:        copyWeight(base.Weight),
		})

		// Odometer step: the last dimension turns fastest.
		for j := len(dims) - 1; j >= 0; j-- {
			picks[j]++
			if picks[j] < len(dims[j].Options) {
				break
			}
			picks[j] = 0
		}
	}

	return variants, nil
}

// CombinationCount multiplies the option counts of dims, failing with
// domain.ErrTooManyVariants as soon as the product passes MaxVariants.
func CombinationCount(dims []Dimension) (int, error) {
	total := 1
	for _, d := range dims {
		n := len(d.Options)
		if n == 0 {
			return 0, nil
		}
		if n > MaxVariants || total > MaxVariants/n {
			return 0, fmt.Errorf("%d options for %q after %d combinations: %w", n, d.Type, total, domain.ErrTooManyVariants)
		}
		total *= n
	}
	return total, nil
}

// ParseDimensions turns attribute declarations into option lists, one per
// attribute. Attributes with a blank type or no non-blank option are
// skipped. Repeated types and options are kept as declared, so the
// combination count is always the product of the per-attribute option
// counts; for a repeated type the later value wins in the attribute map.
func ParseDimensions(attrs []domain.Attribute) []Dimension {
	dims := make([]Dimension, 0, len(attrs))
	for _, a := range attrs {
		typ := strings.TrimSpace(a.Type)
		if typ == "" {
			continue
		}
		options := splitOptions(a.Value)
		if len(options) == 0 {
			continue
		}
		dims = append(dims, Dimension{Type: typ, Options: options})
	}
	return dims
}

// DeriveSKU builds a variant SKU from the selected option values and the
// zero-based combination index: the first three characters of each value,
// upper-cased and joined by "-", then the one-based index padded to three
// digits. Values shorter than three characters contribute what they have.
func DeriveSKU(values []string, index int) string {
	parts := make([]string, 0, len(values)+1)
	for _, v := range values {
		r := []rune(v)
		if len(r) > skuSegmentLength {
			r = r[:skuSegmentLength]
		}
		parts = append(parts, strings.ToUpper(string(r)))
	}
	parts = append(parts, fmt.Sprintf("%03d", index+1))
	return strings.Join(parts, "-")
}

func splitOptions(value string) []string {
	raw := strings.Split(value, ",")
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

func copyWeight(w *float64) *float64 {
	if w == nil {
		return nil
	}
	v := *w
	return &v
}
