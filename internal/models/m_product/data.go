package m_product

import (
	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation for table from a column -> value map.
func InsertMutation(table string, values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(table, cols, vals)
}

// NullableString maps "" to NULL.
func NullableString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}

// NullableStringPtr maps nil to NULL.
func NullableStringPtr(s *string) spanner.NullString {
	if s == nil {
		return spanner.NullString{}
	}
	return spanner.NullString{StringVal: *s, Valid: true}
}

// NullableFloat64Ptr maps nil to NULL.
func NullableFloat64Ptr(f *float64) spanner.NullFloat64 {
	if f == nil {
		return spanner.NullFloat64{}
	}
	return spanner.NullFloat64{Float64: *f, Valid: true}
}
