package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromDecimal(t *testing.T) {
	m, err := NewMoneyFromDecimal(" 19.99 ")
	require.NoError(t, err)
	assert.Equal(t, "19.99", m.String())
	assert.True(t, m.Equals(NewMoney(1999, 100)))

	_, err = NewMoneyFromDecimal("abc")
	assert.Error(t, err)
}

func TestMoneyComparisons(t *testing.T) {
	ten := NewMoney(10, 1)
	five := NewMoney(5, 1)

	assert.True(t, ten.GreaterThan(five))
	assert.True(t, five.LessThan(ten))
	assert.False(t, ten.Equals(nil))
	assert.True(t, Zero().IsZero())
	assert.True(t, five.Subtract(ten).IsNegative())
	assert.True(t, ten.IsPositive())
}

func TestMoneyRatio(t *testing.T) {
	assert.Equal(t, "0.50", NewMoney(5, 1).Ratio(NewMoney(10, 1)).FloatString(2))
	assert.Nil(t, NewMoney(5, 1).Ratio(Zero()))
}

func TestMoneyRat_IsCopy(t *testing.T) {
	m := NewMoney(1, 1)
	r := m.Rat()
	r.SetInt64(7)

	assert.Equal(t, "1.00", m.String())
	assert.Equal(t, "0.0000", NewMoneyFromRat(nil).FloatString(4))
}
