package commands

import (
	"context"
	"time"
)

// CancelStaleDeliveryRequestsCommandHandler cancels delivery requests that
// stayed unclaimed past the configured age. Run periodically by the job
// scheduler; merchants see the cancellation and can re-request delivery.
type CancelStaleDeliveryRequestsCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewCancelStaleDeliveryRequestsCommandHandler creates a handler for the
// stale request sweep.
func NewCancelStaleDeliveryRequestsCommandHandler(
	uowFactory AssignmentUoWFactory,
) CancelStaleDeliveryRequestsCommandHandler {
	return CancelStaleDeliveryRequestsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command and returns how many requests were
// cancelled.
func (h CancelStaleDeliveryRequestsCommandHandler) Handle(
	ctx context.Context, command CancelStaleDeliveryRequestsCommand,
) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()
	cutoff := time.Now().UTC().Add(-command.MaxAge())

	stale, err := assignmentRepo.GetAllRequestedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, assignment := range stale {
		if err = assignment.Cancel(); err != nil {
			return 0, err
		}
		if err = assignmentRepo.Update(ctx, assignment); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
