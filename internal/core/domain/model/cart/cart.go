// Package cart provides the per-user Cart aggregate. Carts are ephemeral:
// checkout converts them into an immutable order snapshot and clears them.
package cart

import (
	"errors"
	"fmt"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart was not created through
	// NewCart or RestoreCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

	// ErrItemNotInCart is returned when removing or updating a line that the
	// cart does not contain.
	ErrItemNotInCart = errors.New("item is not in the cart")
)

// Item is one cart line: a product reference with a quantity. Prices are not
// stored on the line; totals are computed at read time from live products.
type Item struct {
	productID kernel.UUID
	quantity  int
}

// NewItem creates a cart line with a positive quantity.
func NewItem(productID kernel.UUID, quantity int) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return Item{productID: productID, quantity: quantity}, nil
}

// ProductID returns the referenced product.
func (i Item) ProductID() kernel.UUID { return i.productID }

// Quantity returns the line quantity.
func (i Item) Quantity() int { return i.quantity }

// Cart accumulates line items for one user. Adding a product already in the
// cart merges quantities, mirroring the (userID, productID) uniqueness of the
// underlying table.
type Cart struct {
	userID kernel.UUID
	items  []Item

	isConstructed bool
}

// NewCart creates an empty cart for a user.
func NewCart(userID kernel.UUID) (*Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	return &Cart{userID: userID, isConstructed: true}, nil
}

// RestoreCart reconstructs a cart with its lines from persistence.
func RestoreCart(userID kernel.UUID, items []Item) (*Cart, error) {
	c, err := NewCart(userID)
	if err != nil {
		return nil, err
	}
	c.items = append(c.items, items...)
	return c, nil
}

// Validate ensures the Cart was created via a constructor.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// UserID returns the cart owner.
func (c *Cart) UserID() kernel.UUID { return c.userID }

// Items returns a copy of the cart lines.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// AddItem adds a line, merging the quantity into an existing line for the
// same product.
func (c *Cart) AddItem(item Item) {
	for i, existing := range c.items {
		if existing.productID.IsEqual(item.productID) {
			c.items[i].quantity += item.quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// UpdateQuantity replaces the quantity of an existing line.
func (c *Cart) UpdateQuantity(productID kernel.UUID, quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	for i, existing := range c.items {
		if existing.productID.IsEqual(productID) {
			c.items[i].quantity = quantity
			return nil
		}
	}
	return ErrItemNotInCart
}

// RemoveItem deletes the line for the given product.
func (c *Cart) RemoveItem(productID kernel.UUID) error {
	for i, existing := range c.items {
		if existing.productID.IsEqual(productID) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotInCart
}

// Clear removes every line. Called by checkout after the order snapshot is taken.
func (c *Cart) Clear() {
	c.items = nil
}
