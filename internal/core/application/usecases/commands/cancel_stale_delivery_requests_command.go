package commands

import (
	"errors"
	"fmt"
	"time"

	"urbanmart/internal/pkg/errs"
	"urbanmart/internal/pkg/guard"
)

var ErrCancelStaleDeliveryRequestsCommandIsNotConstructed = errors.New(
	"CancelStaleDeliveryRequestsCommand must be created via NewCancelStaleDeliveryRequestsCommand constructor",
)

// CancelStaleDeliveryRequestsCommand represents a sweep of delivery requests
// that no organization claimed within the allowed age.
type CancelStaleDeliveryRequestsCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleDeliveryRequestsCommand creates a sweep command with a
// positive maximum age.
func NewCancelStaleDeliveryRequestsCommand(maxAge time.Duration) (CancelStaleDeliveryRequestsCommand, error) {
	sweepCommand := CancelStaleDeliveryRequestsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if maxAge <= 0 {
		return CancelStaleDeliveryRequestsCommand{}, errs.NewValueIsInvalidErrorWithCause("maxAge",
			fmt.Errorf("%s is not greater than 0", maxAge))
	}
	sweepCommand.maxAge = maxAge

	return sweepCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleDeliveryRequestsCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleDeliveryRequestsCommandIsNotConstructed)
}

// MaxAge returns how old a Requested assignment may be before cancellation.
func (c CancelStaleDeliveryRequestsCommand) MaxAge() time.Duration {
	return c.maxAge
}
