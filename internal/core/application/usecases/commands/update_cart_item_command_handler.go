package commands

import (
	"context"
)

// UpdateCartItemCommandHandler replaces the quantity of an existing cart line.
type UpdateCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartItemCommandHandler creates a handler for cart quantity updates.
func NewUpdateCartItemCommandHandler(uowFactory CartUoWFactory) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity update command.
// Returns cart.ErrItemNotInCart when the product has no line in the cart.
func (h UpdateCartItemCommandHandler) Handle(ctx context.Context, command UpdateCartItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.Get(ctx, command.UserID())
	if err != nil {
		return err
	}

	if err = userCart.UpdateQuantity(command.ProductID(), command.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, userCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
