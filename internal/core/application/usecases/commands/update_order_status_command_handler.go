package commands

import (
	"context"
	"time"

	"urbanmart/internal/core/domain/model/user"
	"urbanmart/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler moves an order through its lifecycle.
// The status write and the history append commit in one transaction; a
// disallowed transition leaves the order untouched.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// Admins may update any order; merchants only orders placed with them. The
// transition is validated against the lifecycle graph before any write.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if command.ActorRole() == user.Merchant && !aggregate.MerchantID().IsEqual(command.ActorID()) {
		return errs.NewNotAuthorizedError("order belongs to another merchant")
	}

	if err = aggregate.ChangeStatus(
		command.Target(), command.ActorID(), command.Notes(), time.Now().UTC(),
	); err != nil {
		return err
	}

	if trackingNumber := command.TrackingNumber(); trackingNumber != "" {
		aggregate.SetTrackingNumber(trackingNumber)
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
