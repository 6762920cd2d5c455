package product_test

import (
	"testing"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, price float64, stock int) *product.Product {
	t.Helper()
	m, err := kernel.NewMoney(price)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Widget", m, stock)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("valid product", func(t *testing.T) {
		p := newTestProduct(t, 30, 5)
		assert.True(t, p.IsActive())
		assert.Equal(t, 5, p.StockQuantity())
	})

	t.Run("negative stock is rejected", func(t *testing.T) {
		m, _ := kernel.NewMoney(10)
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Widget", m, -1)
		require.Error(t, err)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		m, _ := kernel.NewMoney(10)
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "", m, 1)
		require.Error(t, err)
	})
}

func TestDecrementStock(t *testing.T) {
	t.Run("decrement within stock", func(t *testing.T) {
		p := newTestProduct(t, 30, 5)
		require.NoError(t, p.DecrementStock(3))
		assert.Equal(t, 2, p.StockQuantity())
	})

	t.Run("decrement to exactly zero", func(t *testing.T) {
		p := newTestProduct(t, 30, 5)
		require.NoError(t, p.DecrementStock(5))
		assert.Equal(t, 0, p.StockQuantity())
	})

	t.Run("decrement below zero is rejected and stock unchanged", func(t *testing.T) {
		p := newTestProduct(t, 30, 5)
		err := p.DecrementStock(6)
		require.ErrorIs(t, err, product.ErrInsufficientStock)
		assert.Contains(t, err.Error(), "Widget")
		assert.Equal(t, 5, p.StockQuantity())
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		p := newTestProduct(t, 30, 5)
		require.Error(t, p.DecrementStock(0))
	})
}

func TestHasStock(t *testing.T) {
	p := newTestProduct(t, 30, 2)
	assert.True(t, p.HasStock(2))
	assert.False(t, p.HasStock(3))
	assert.False(t, p.HasStock(0))
}
