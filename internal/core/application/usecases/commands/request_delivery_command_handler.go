package commands

import (
	"context"
	"errors"
	"time"

	"urbanmart/internal/core/domain/model/delivery"
	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/order"
	"urbanmart/internal/core/domain/model/user"
	"urbanmart/internal/pkg/errs"
)

// ErrOrderAlreadyHasAssignment is returned when requesting delivery for an
// order that already has a delivery assignment.
var ErrOrderAlreadyHasAssignment = errors.New("order already has a delivery assignment")

// RequestDeliveryCommandHandler creates a delivery assignment for an order.
// An organization request leaves the assignment unclaimed in Requested
// status; a direct assignment attaches a delivery person and confirms the
// parent order in the same transaction.
type RequestDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewRequestDeliveryCommandHandler creates a handler for delivery requests.
func NewRequestDeliveryCommandHandler(uowFactory DeliveryUoWFactory) RequestDeliveryCommandHandler {
	return RequestDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery request command.
// The merchant must own the order and the order must not already have an
// assignment. A direct assignment also moves the order to Confirmed with one
// history row, committed atomically with the assignment insert.
func (h RequestDeliveryCommandHandler) Handle(ctx context.Context, command RequestDeliveryCommand) error {
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
	parentOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}
	if !parentOrder.MerchantID().IsEqual(command.MerchantID()) {
		return errs.NewNotAuthorizedError("order belongs to another merchant")
	}

	assignmentRepo := uow.AssignmentRepository()
	if _, err = assignmentRepo.GetByOrderID(ctx, command.OrderID()); err == nil {
		return ErrOrderAlreadyHasAssignment
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	now := time.Now().UTC()

	var assignment *delivery.Assignment
	if orgID := command.OrgID(); orgID != nil {
		if err = h.checkOrganization(ctx, uow, *orgID); err != nil {
			return err
		}
		assignment, err = delivery.NewDeliveryRequest(
			command.AssignmentID(), command.OrderID(), command.MerchantID(), *orgID, now)
		if err != nil {
			return err
		}
	} else {
		courierID := *command.CourierID()
		if err = h.checkCourier(ctx, uow, courierID); err != nil {
			return err
		}
		assignment, err = delivery.NewDirectAssignment(
			command.AssignmentID(), command.OrderID(), command.MerchantID(), courierID, now)
		if err != nil {
			return err
		}

		if err = parentOrder.ChangeStatus(
			order.Confirmed, command.MerchantID(), "Delivery assigned", now,
		); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, parentOrder); err != nil {
			return err
		}
	}

	if err = assignmentRepo.Add(ctx, assignment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h RequestDeliveryCommandHandler) checkOrganization(
	ctx context.Context, uow DeliveryUoW, orgID kernel.UUID,
) error {
	org, err := uow.OrganizationRepository().Get(ctx, orgID)
	if err != nil {
		return err
	}
	if !org.IsActive() {
		return errs.NewObjectNotFoundError("orgID", orgID)
	}
	return nil
}

func (h RequestDeliveryCommandHandler) checkCourier(
	ctx context.Context, uow DeliveryUoW, courierID kernel.UUID,
) error {
	courier, err := uow.UserRepository().Get(ctx, courierID)
	if err != nil {
		return err
	}
	if courier.Role() != user.Delivery {
		return errs.NewValueIsInvalidError("courierID")
	}
	return nil
}
