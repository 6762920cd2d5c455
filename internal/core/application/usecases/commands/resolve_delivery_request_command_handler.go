package commands

import (
	"context"
	"errors"
	"time"

	"urbanmart/internal/core/domain/model/order"
	"urbanmart/internal/core/domain/model/user"
	"urbanmart/internal/pkg/errs"
)

// ErrRequestNotForOrganization is returned when resolving a delivery request
// that was not addressed to any organization (a direct assignment).
var ErrRequestNotForOrganization = errors.New("delivery request is not addressed to an organization")

// ResolveDeliveryRequestCommandHandler lets an organization owner accept or
// reject a pending delivery request. Accepting picks a delivery person from
// the organization's members and confirms the parent order; the assignment
// update, order update and history append commit in one transaction.
type ResolveDeliveryRequestCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewResolveDeliveryRequestCommandHandler creates a handler for delivery
// request resolutions.
func NewResolveDeliveryRequestCommandHandler(uowFactory DeliveryUoWFactory) ResolveDeliveryRequestCommandHandler {
	return ResolveDeliveryRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resolution command.
// Only the owner of the targeted organization may resolve the request, and
// the picked delivery person must be a member of that organization.
func (h ResolveDeliveryRequestCommandHandler) Handle(ctx context.Context, command ResolveDeliveryRequestCommand) error {
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

	orgID := assignment.OrgID()
	if orgID == nil {
		return ErrRequestNotForOrganization
	}

	org, err := uow.OrganizationRepository().Get(ctx, *orgID)
	if err != nil {
		return err
	}
	if !org.IsOwnedBy(command.OwnerID()) {
		return errs.NewNotAuthorizedError("delivery request belongs to another organization")
	}

	if !command.Accept() {
		if err = assignment.Cancel(); err != nil {
			return err
		}
		if err = assignmentRepo.Update(ctx, assignment); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	courierID := *command.CourierID()
	courier, err := uow.UserRepository().Get(ctx, courierID)
	if err != nil {
		return err
	}
	if courier.Role() != user.Delivery ||
		courier.DeliveryOrgID() == nil || !courier.DeliveryOrgID().IsEqual(org.ID()) {
		return errs.NewValueIsInvalidError("courierID")
	}

	if err = assignment.AssignCourier(courierID); err != nil {
		return err
	}

	// Acceptance confirms the order only while it is still Pending. A
	// re-accept that swaps the courier on an Assigned request, or an order
	// the merchant already moved forward, keeps its current status.
	orderRepo := uow.OrderRepository()
	parentOrder, err := orderRepo.Get(ctx, assignment.OrderID())
	if err != nil {
		return err
	}

	if parentOrder.Status() == order.Pending {
		now := time.Now().UTC()
		if err = parentOrder.ChangeStatus(
			order.Confirmed, command.OwnerID(), "Delivery request accepted", now,
		); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, parentOrder); err != nil {
			return err
		}
	}

	if err = assignmentRepo.Update(ctx, assignment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
