package commands

import (
	"context"
	"errors"

	"urbanmart/internal/core/domain/model/delivery"
	"urbanmart/internal/core/domain/model/user"
	"urbanmart/internal/pkg/errs"
)

// CreateOrganizationCommandHandler founds a delivery organization. The
// founder must hold the delivery role, may own at most one organization, and
// becomes a member of the new one. Duplicate names are rejected by the
// storage layer's unique index and surface as a conflict.
type CreateOrganizationCommandHandler struct {
	uowFactory OrganizationUoWFactory
}

// NewCreateOrganizationCommandHandler creates a handler for organization creation.
func NewCreateOrganizationCommandHandler(uowFactory OrganizationUoWFactory) CreateOrganizationCommandHandler {
	return CreateOrganizationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the organization creation command.
func (h CreateOrganizationCommandHandler) Handle(ctx context.Context, command CreateOrganizationCommand) error {
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

	userRepo := uow.UserRepository()
	owner, err := userRepo.Get(ctx, command.OwnerID())
	if err != nil {
		return err
	}
	if owner.Role() != user.Delivery {
		return user.ErrNotDeliveryRole
	}

	orgRepo := uow.OrganizationRepository()
	if _, err = orgRepo.GetByOwner(ctx, command.OwnerID()); err == nil {
		return errs.NewConflictError("user already owns a delivery organization")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	org, err := delivery.NewOrganization(command.OrgID(), command.Name(), command.OwnerID())
	if err != nil {
		return err
	}

	if err = owner.JoinDeliveryOrg(org.ID()); err != nil {
		return err
	}

	if err = orgRepo.Add(ctx, org); err != nil {
		return err
	}
	if err = userRepo.Update(ctx, owner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
