package services

import (
	"errors"
	"fmt"

	"urbanmart/internal/core/domain/model/cart"
	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/order"
	"urbanmart/internal/core/domain/model/product"
)

var (
	// ErrCartIsEmpty is returned when checking out a cart with no lines.
	ErrCartIsEmpty = errors.New("cart is empty")

	// ErrProductUnavailable is returned when a cart line references a product
	// that is missing from the catalog snapshot or has been deactivated.
	ErrProductUnavailable = errors.New("product is unavailable")

	// ErrMixedMerchants is returned when cart lines span more than one
	// merchant. An order references exactly one merchant, so a checkout is
	// scoped to a single storefront.
	ErrMixedMerchants = errors.New("cart contains products from multiple merchants")
)

// Pricing rules applied at checkout. Tax is charged on the subtotal; shipping
// is waived once the subtotal exceeds the free-shipping threshold.
const (
	TaxRate               = 0.08
	FreeShippingThreshold = 50.00
	ShippingFee           = 4.99
)

// CheckoutResult carries everything the order constructor needs: the merchant
// the purchase belongs to, the priced line snapshots, and the monetary
// breakdown.
type CheckoutResult struct {
	MerchantID kernel.UUID
	Items      []order.Item
	Totals     order.Totals
}

// CheckoutService is a domain service that turns a cart into an order
// snapshot.
//
// Key responsibilities:
//   - Validating the cart and every referenced product
//   - Freezing per-line prices and names into order items
//   - Reserving stock by decrementing each product aggregate
//   - Computing subtotal, tax, shipping and total under one rounding rule
//
// Business rules:
//   - The cart must be non-empty
//   - Every line's product must exist and be active
//   - All lines must belong to one merchant
//   - A line exceeding available stock fails the whole checkout; no partial
//     decrement survives
type CheckoutService struct{}

// NewCheckoutService creates a new CheckoutService instance.
func NewCheckoutService() CheckoutService {
	return CheckoutService{}
}

// Checkout prices the cart against the given product aggregates and
// decrements their stock.
//
// The products slice is the caller's snapshot of every product referenced by
// the cart, loaded inside the checkout transaction. On success the decremented
// aggregates must be persisted together with the new order; on any error the
// caller discards them, so partial in-memory decrements never reach storage.
//
// Returns ErrCartIsEmpty, ErrProductUnavailable, ErrMixedMerchants, or
// product.ErrInsufficientStock (naming the offending product) on rule
// violations.
func (s CheckoutService) Checkout(c *cart.Cart, products []*product.Product) (CheckoutResult, error) {
	if err := c.Validate(); err != nil {
		return CheckoutResult{}, err
	}
	if c.IsEmpty() {
		return CheckoutResult{}, ErrCartIsEmpty
	}

	catalog := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return CheckoutResult{}, err
		}
		catalog[p.ID()] = p
	}

	var (
		merchantID kernel.UUID
		items      []order.Item
		subtotal   = kernel.ZeroMoney()
	)

	for _, line := range c.Items() {
		p, ok := catalog[line.ProductID()]
		if !ok || !p.IsActive() {
			return CheckoutResult{}, fmt.Errorf("%w: %s", ErrProductUnavailable, line.ProductID())
		}

		if err := merchantID.Validate(); err != nil {
			merchantID = p.MerchantID()
		} else if !merchantID.IsEqual(p.MerchantID()) {
			return CheckoutResult{}, ErrMixedMerchants
		}

		if err := p.DecrementStock(line.Quantity()); err != nil {
			return CheckoutResult{}, err
		}

		item, err := order.NewItem(p.ID(), p.Name(), p.Price(), line.Quantity())
		if err != nil {
			return CheckoutResult{}, err
		}

		items = append(items, item)
		subtotal = subtotal.Add(item.Total())
	}

	totals, err := s.price(subtotal)
	if err != nil {
		return CheckoutResult{}, err
	}

	return CheckoutResult{MerchantID: merchantID, Items: items, Totals: totals}, nil
}

func (s CheckoutService) price(subtotal kernel.Money) (order.Totals, error) {
	tax := subtotal.MulRate(TaxRate)

	shipping := kernel.ZeroMoney()
	threshold, err := kernel.NewMoney(FreeShippingThreshold)
	if err != nil {
		return order.Totals{}, err
	}
	if !subtotal.GreaterThan(threshold) {
		if shipping, err = kernel.NewMoney(ShippingFee); err != nil {
			return order.Totals{}, err
		}
	}

	return order.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}, nil
}
