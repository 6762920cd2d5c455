package commands

import (
	"errors"
	"fmt"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/errs"
	"urbanmart/internal/pkg/guard"
)

var ErrAddToCartCommandIsNotConstructed = errors.New(
	"AddToCartCommand must be created via NewAddToCartCommand constructor",
)

// AddToCartCommand represents a request to add a product line to a user's
// cart. Adding a product already in the cart merges quantities.
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates an add-to-cart command with a positive quantity.
func NewAddToCartCommand(userID, productID kernel.UUID, quantity int) (AddToCartCommand, error) {
	cartCommand := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cartCommand.setUserID(userID),
		cartCommand.setProductID(productID),
		cartCommand.setQuantity(quantity),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c AddToCartCommand) UserID() kernel.UUID {
	return c.userID
}

// ProductID returns the product to add.
func (c AddToCartCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the quantity to add.
func (c AddToCartCommand) Quantity() int {
	return c.quantity
}

func (c *AddToCartCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *AddToCartCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddToCartCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}
