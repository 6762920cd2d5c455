package commands

import (
	"context"

	"urbanmart/internal/core/domain/model/hiring"
	"urbanmart/internal/pkg/errs"
)

// ResolveHiringRequestCommandHandler resolves a pending hiring request.
// Invitations are decided by the invited delivery person, applications by the
// organization owner. Accepting records the membership on the user aggregate
// in the same transaction as the request resolution, so a crash can never
// leave an accepted request without a membership.
type ResolveHiringRequestCommandHandler struct {
	uowFactory HiringUoWFactory
}

// NewResolveHiringRequestCommandHandler creates a handler for hiring request resolutions.
func NewResolveHiringRequestCommandHandler(uowFactory HiringUoWFactory) ResolveHiringRequestCommandHandler {
	return ResolveHiringRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resolution command.
// Returns hiring.ErrRequestAlreadyResolved when the request is no longer
// pending; nothing is mutated in that case.
func (h ResolveHiringRequestCommandHandler) Handle(ctx context.Context, command ResolveHiringRequestCommand) error {
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

	requestRepo := uow.HiringRequestRepository()
	request, err := requestRepo.Get(ctx, command.RequestID())
	if err != nil {
		return err
	}

	if err = h.checkCounterpart(ctx, uow, request, command); err != nil {
		return err
	}

	if !command.Accept() {
		if err = request.Reject(); err != nil {
			return err
		}
		if err = requestRepo.Update(ctx, request); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	if err = request.Accept(); err != nil {
		return err
	}

	userRepo := uow.UserRepository()
	deliveryUser, err := userRepo.Get(ctx, request.DeliveryUserID())
	if err != nil {
		return err
	}
	if err = deliveryUser.JoinDeliveryOrg(request.OrgID()); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, request); err != nil {
		return err
	}
	if err = userRepo.Update(ctx, deliveryUser); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// checkCounterpart enforces who may decide the request: the invited delivery
// person for invitations, the organization owner for applications.
func (h ResolveHiringRequestCommandHandler) checkCounterpart(
	ctx context.Context,
	uow HiringUoW,
	request *hiring.Request,
	command ResolveHiringRequestCommand,
) error {
	switch request.Kind() {
	case hiring.Invitation:
		if !command.ActorID().IsEqual(request.DeliveryUserID()) {
			return errs.NewNotAuthorizedError("only the invited delivery person can decide")
		}
	case hiring.Application:
		org, err := uow.OrganizationRepository().Get(ctx, request.OrgID())
		if err != nil {
			return err
		}
		if !org.IsOwnedBy(command.ActorID()) {
			return errs.NewNotAuthorizedError("only the organization owner can decide")
		}
	}

	return nil
}
