package commands

import (
	"context"

	"urbanmart/internal/core/domain/model/cart"
	"urbanmart/internal/pkg/errs"
)

// AddToCartCommandHandler adds a product line to a user's cart.
type AddToCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddToCartCommandHandler creates a handler for add-to-cart operations.
func NewAddToCartCommandHandler(uowFactory CartUoWFactory) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-to-cart command.
// The product must exist and be active; inactive products are reported the
// same way as missing ones. Quantities merge on duplicate adds.
func (h AddToCartCommandHandler) Handle(ctx context.Context, command AddToCartCommand) error {
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

	product, err := uow.ProductRepository().Get(ctx, command.ProductID())
	if err != nil {
		return err
	}
	if !product.IsActive() {
		return errs.NewObjectNotFoundError("productID", command.ProductID())
	}

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.Get(ctx, command.UserID())
	if err != nil {
		return err
	}

	item, err := cart.NewItem(command.ProductID(), command.Quantity())
	if err != nil {
		return err
	}
	userCart.AddItem(item)

	if err = cartRepo.Save(ctx, userCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
