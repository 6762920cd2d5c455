package commands

import (
	"errors"
	"fmt"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/errs"
	"urbanmart/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand represents a request to replace the quantity of an
// existing cart line.
type UpdateCartItemCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewUpdateCartItemCommand creates a quantity update command.
func NewUpdateCartItemCommand(userID, productID kernel.UUID, quantity int) (UpdateCartItemCommand, error) {
	cartCommand := UpdateCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cartCommand.setUserID(userID),
		cartCommand.setProductID(productID),
		cartCommand.setQuantity(quantity),
	); err != nil {
		return UpdateCartItemCommand{}, err
	}

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c UpdateCartItemCommand) UserID() kernel.UUID {
	return c.userID
}

// ProductID returns the product line to update.
func (c UpdateCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the replacement quantity.
func (c UpdateCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartItemCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}
