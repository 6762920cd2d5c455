package commands

import (
	"errors"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/guard"
)

var (
	ErrResolveDeliveryRequestCommandIsNotConstructed = errors.New(
		"ResolveDeliveryRequestCommand must be created via NewResolveDeliveryRequestCommand constructor",
	)
	ErrCourierIsRequiredOnAccept = errors.New("a delivery person is required when accepting a request")
)

// ResolveDeliveryRequestCommand represents an organization owner's decision
// on a pending delivery request: accept it by picking one of the org's
// delivery people, or reject it.
type ResolveDeliveryRequestCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	ownerID      kernel.UUID
	accept       bool
	courierID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewResolveDeliveryRequestCommand creates a resolution command. courierID is
// required when accepting and ignored when rejecting.
func NewResolveDeliveryRequestCommand(
	assignmentID, ownerID kernel.UUID,
	accept bool,
	courierID *kernel.UUID,
) (ResolveDeliveryRequestCommand, error) {
	resolveCommand := ResolveDeliveryRequestCommand{
		accept: accept,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		resolveCommand.setAssignmentID(assignmentID),
		resolveCommand.setOwnerID(ownerID),
		resolveCommand.setCourierID(accept, courierID),
	); err != nil {
		return ResolveDeliveryRequestCommand{}, err
	}

	return resolveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrResolveDeliveryRequestCommandIsNotConstructed)
}

// AssignmentID returns the delivery request to resolve.
func (c ResolveDeliveryRequestCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// OwnerID returns the acting organization owner.
func (c ResolveDeliveryRequestCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Accept reports whether the request is accepted or rejected.
func (c ResolveDeliveryRequestCommand) Accept() bool {
	return c.accept
}

// CourierID returns the delivery person picked on accept, or nil on reject.
func (c ResolveDeliveryRequestCommand) CourierID() *kernel.UUID {
	return c.courierID
}

func (c *ResolveDeliveryRequestCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *ResolveDeliveryRequestCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *ResolveDeliveryRequestCommand) setCourierID(accept bool, courierID *kernel.UUID) error {
	if !accept {
		return nil
	}
	if courierID == nil {
		return ErrCourierIsRequiredOnAccept
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
