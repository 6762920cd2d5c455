package services_test

import (
	"testing"

	"urbanmart/internal/core/domain/model/cart"
	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/product"
	"urbanmart/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, merchantID kernel.UUID, name string, price float64, stock int) *product.Product {
	t.Helper()
	money, err := kernel.NewMoney(price)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), merchantID, name, money, stock)
	require.NoError(t, err)
	return p
}

func newCartWith(t *testing.T, lines map[*product.Product]int) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	for p, qty := range lines {
		item, err := cart.NewItem(p.ID(), qty)
		require.NoError(t, err)
		c.AddItem(item)
	}
	return c
}

func TestCheckout(t *testing.T) {
	svc := services.NewCheckoutService()

	t.Run("prices a two line cart above the free shipping threshold", func(t *testing.T) {
		merchantID := kernel.NewUUID()
		a := newProduct(t, merchantID, "Desk lamp", 30.00, 5)
		b := newProduct(t, merchantID, "Notebook", 25.00, 5)
		c := newCartWith(t, map[*product.Product]int{a: 1, b: 1})

		result, err := svc.Checkout(c, []*product.Product{a, b})
		require.NoError(t, err)

		assert.True(t, result.MerchantID.IsEqual(merchantID))
		assert.Len(t, result.Items, 2)
		assert.InDelta(t, 55.00, result.Totals.Subtotal.Amount(), 0.0001)
		assert.InDelta(t, 4.40, result.Totals.Tax.Amount(), 0.0001)
		assert.InDelta(t, 0.00, result.Totals.Shipping.Amount(), 0.0001)
		assert.InDelta(t, 59.40, result.Totals.Total.Amount(), 0.0001)
		assert.Equal(t, 4, a.StockQuantity())
		assert.Equal(t, 4, b.StockQuantity())
	})

	t.Run("charges shipping at or below the threshold", func(t *testing.T) {
		merchantID := kernel.NewUUID()
		p := newProduct(t, merchantID, "Mug", 25.00, 5)
		c := newCartWith(t, map[*product.Product]int{p: 2})

		result, err := svc.Checkout(c, []*product.Product{p})
		require.NoError(t, err)

		assert.InDelta(t, 50.00, result.Totals.Subtotal.Amount(), 0.0001)
		assert.InDelta(t, 4.99, result.Totals.Shipping.Amount(), 0.0001)
		assert.InDelta(t, 58.99, result.Totals.Total.Amount(), 0.0001)
	})

	t.Run("freezes the product price on the line snapshot", func(t *testing.T) {
		merchantID := kernel.NewUUID()
		p := newProduct(t, merchantID, "Poster", 10.00, 5)
		c := newCartWith(t, map[*product.Product]int{p: 3})

		result, err := svc.Checkout(c, []*product.Product{p})
		require.NoError(t, err)

		newPrice, _ := kernel.NewMoney(99.99)
		require.NoError(t, p.ChangePrice(newPrice))

		assert.InDelta(t, 10.00, result.Items[0].UnitPrice().Amount(), 0.0001)
		assert.InDelta(t, 30.00, result.Items[0].Total().Amount(), 0.0001)
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)

		_, err = svc.Checkout(c, nil)
		require.ErrorIs(t, err, services.ErrCartIsEmpty)
	})

	t.Run("insufficient stock on any line fails the whole checkout", func(t *testing.T) {
		merchantID := kernel.NewUUID()
		a := newProduct(t, merchantID, "Desk lamp", 30.00, 5)
		b := newProduct(t, merchantID, "Notebook", 25.00, 1)

		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)
		lineA, err := cart.NewItem(a.ID(), 1)
		require.NoError(t, err)
		lineB, err := cart.NewItem(b.ID(), 2)
		require.NoError(t, err)
		c.AddItem(lineA)
		c.AddItem(lineB)

		_, err = svc.Checkout(c, []*product.Product{a, b})
		require.ErrorIs(t, err, product.ErrInsufficientStock)
		assert.Contains(t, err.Error(), "Notebook")
	})

	t.Run("inactive product is rejected", func(t *testing.T) {
		merchantID := kernel.NewUUID()
		p := newProduct(t, merchantID, "Poster", 10.00, 5)
		p.Deactivate()
		c := newCartWith(t, map[*product.Product]int{p: 1})

		_, err := svc.Checkout(c, []*product.Product{p})
		require.ErrorIs(t, err, services.ErrProductUnavailable)
	})

	t.Run("lines from two merchants are rejected", func(t *testing.T) {
		a := newProduct(t, kernel.NewUUID(), "Desk lamp", 30.00, 5)
		b := newProduct(t, kernel.NewUUID(), "Notebook", 25.00, 5)

		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)
		lineA, err := cart.NewItem(a.ID(), 1)
		require.NoError(t, err)
		lineB, err := cart.NewItem(b.ID(), 1)
		require.NoError(t, err)
		c.AddItem(lineA)
		c.AddItem(lineB)

		_, err = svc.Checkout(c, []*product.Product{a, b})
		require.ErrorIs(t, err, services.ErrMixedMerchants)
	})
}
