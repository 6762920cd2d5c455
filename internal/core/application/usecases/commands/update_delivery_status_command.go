package commands

import (
	"errors"
	"fmt"

	"urbanmart/internal/core/domain/model/delivery"
	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/errs"
	"urbanmart/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a delivery person's progress report
// on an assignment: picked up (InTransit) or delivered (Completed).
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	courierID    kernel.UUID
	target       delivery.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a progress command. Only InTransit
// and Completed are valid targets; other statuses are driven by their own
// commands.
func NewUpdateDeliveryStatusCommand(
	assignmentID, courierID kernel.UUID,
	target delivery.Status,
) (UpdateDeliveryStatusCommand, error) {
	statusCommand := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setAssignmentID(assignmentID),
		statusCommand.setCourierID(courierID),
		statusCommand.setTarget(target),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// AssignmentID returns the assignment to advance.
func (c UpdateDeliveryStatusCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// CourierID returns the acting delivery person.
func (c UpdateDeliveryStatusCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Target returns the requested assignment status.
func (c UpdateDeliveryStatusCommand) Target() delivery.Status {
	return c.target
}

func (c *UpdateDeliveryStatusCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setTarget(target delivery.Status) error {
	if target != delivery.InTransit && target != delivery.Completed {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a delivery progress status", target))
	}

	c.target = target
	return nil
}
