package commands

import (
	"context"
	"time"

	"urbanmart/internal/core/domain/model/hiring"
	"urbanmart/internal/core/domain/model/user"
	"urbanmart/internal/pkg/errs"
)

// CreateHiringRequestCommandHandler opens a pending hiring request.
// An invitation must come from the organization's owner; an application must
// come from the delivery person themselves. The target user must hold the
// delivery role and must not already belong to an organization. A duplicate
// pending request of the same kind for the same (organization, delivery
// person) pair is rejected by the storage layer's partial unique index and
// surfaces as a conflict.
type CreateHiringRequestCommandHandler struct {
	uowFactory HiringUoWFactory
}

// NewCreateHiringRequestCommandHandler creates a handler for hiring request creation.
func NewCreateHiringRequestCommandHandler(uowFactory HiringUoWFactory) CreateHiringRequestCommandHandler {
	return CreateHiringRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hiring request command.
func (h CreateHiringRequestCommandHandler) Handle(ctx context.Context, command CreateHiringRequestCommand) error {
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

	org, err := uow.OrganizationRepository().Get(ctx, command.OrgID())
	if err != nil {
		return err
	}

	switch command.Kind() {
	case hiring.Invitation:
		if !org.IsOwnedBy(command.ActorID()) {
			return errs.NewNotAuthorizedError("only the organization owner can invite")
		}
	case hiring.Application:
		if !command.ActorID().IsEqual(command.DeliveryUserID()) {
			return errs.NewNotAuthorizedError("applications can only be submitted by the applicant")
		}
	}

	deliveryUser, err := uow.UserRepository().Get(ctx, command.DeliveryUserID())
	if err != nil {
		return err
	}
	if deliveryUser.Role() != user.Delivery {
		return user.ErrNotDeliveryRole
	}
	if deliveryUser.DeliveryOrgID() != nil {
		return user.ErrAlreadyOrgMember
	}

	request, err := hiring.NewRequest(
		command.RequestID(), command.OrgID(), command.DeliveryUserID(),
		command.Kind(), time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.HiringRequestRepository().Add(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
