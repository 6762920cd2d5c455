package kernel_test

import (
	"testing"

	"urbanmart/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid amount is rounded to two decimals", func(t *testing.T) {
		m, err := kernel.NewMoney(19.999)
		require.NoError(t, err)
		assert.InDelta(t, 20.00, m.Amount(), 0.0001)
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := kernel.NewMoney(-0.01)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var m kernel.Money
		require.Error(t, m.Validate())
	})

	t.Run("constructed value passes validation", func(t *testing.T) {
		m, _ := kernel.NewMoney(5)
		require.NoError(t, m.Validate())
		require.NoError(t, kernel.ZeroMoney().Validate())
	})
}

func TestMoneyArithmetic(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		a, _ := kernel.NewMoney(30)
		b, _ := kernel.NewMoney(25)
		assert.InDelta(t, 55.00, a.Add(b).Amount(), 0.0001)
	})

	t.Run("MulQty", func(t *testing.T) {
		price, _ := kernel.NewMoney(9.99)
		assert.InDelta(t, 29.97, price.MulQty(3).Amount(), 0.0001)
	})

	t.Run("MulRate rounds the result", func(t *testing.T) {
		subtotal, _ := kernel.NewMoney(55)
		tax := subtotal.MulRate(0.08)
		assert.InDelta(t, 4.40, tax.Amount(), 0.0001)
	})

	t.Run("GreaterThan", func(t *testing.T) {
		a, _ := kernel.NewMoney(50.01)
		b, _ := kernel.NewMoney(50)
		assert.True(t, a.GreaterThan(b))
		assert.False(t, b.GreaterThan(a))
	})

	t.Run("String formats two decimals", func(t *testing.T) {
		m, _ := kernel.NewMoney(59.4)
		assert.Equal(t, "59.40", m.String())
	})
}
