package commands

import (
	"context"
	"time"

	"urbanmart/internal/core/domain/model/delivery"
	"urbanmart/internal/core/domain/model/order"
	"urbanmart/internal/pkg/errs"
)

// UpdateDeliveryStatusCommandHandler advances an assignment through the
// delivery workflow and mirrors the progress onto the parent order:
// InTransit ships the order, Completed delivers it and attaches the delivery
// person. Assignment update, order update and history append are one atomic
// unit of work, so the pair can never diverge.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery
// progress updates.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the progress command.
// Only the assigned delivery person may report progress. The assignment
// transition is validated first; the order side effect follows the lifecycle
// graph and appends exactly one history row.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, command UpdateDeliveryStatusCommand) error {
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

	assignmentRepo := uow.AssignmentRepository()
	assignment, err := assignmentRepo.Get(ctx, command.AssignmentID())
	if err != nil {
		return err
	}

	if assignment.CourierID() == nil || !assignment.CourierID().IsEqual(command.CourierID()) {
		return errs.NewNotAuthorizedError("assignment belongs to another delivery person")
	}

	orderRepo := uow.OrderRepository()
	parentOrder, err := orderRepo.Get(ctx, assignment.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	switch command.Target() {
	case delivery.InTransit:
		if err = assignment.MarkInTransit(); err != nil {
			return err
		}
		if err = parentOrder.ChangeStatus(
			order.Shipped, command.CourierID(), "Order picked up", now,
		); err != nil {
			return err
		}
	case delivery.Completed:
		if err = assignment.MarkCompleted(); err != nil {
			return err
		}
		if err = parentOrder.ChangeStatus(
			order.Delivered, command.CourierID(), "Order delivered", now,
		); err != nil {
			return err
		}
		if err = parentOrder.AttachDeliveryUser(command.CourierID()); err != nil {
			return err
		}
	}

	if err = assignmentRepo.Update(ctx, assignment); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, parentOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
