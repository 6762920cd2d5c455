package commands

import (
	"errors"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/guard"
)

var (
	ErrRequestDeliveryCommandIsNotConstructed = errors.New(
		"RequestDeliveryCommand must be created via NewRequestDeliveryCommand constructor",
	)
	ErrDeliveryTargetIsInvalid = errors.New(
		"exactly one of organization or delivery person must be specified",
	)
)

// RequestDeliveryCommand represents a merchant's request to get an order
// delivered, either by asking an organization (an unclaimed delivery request)
// or by assigning a delivery person directly.
type RequestDeliveryCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	orderID      kernel.UUID
	merchantID   kernel.UUID
	orgID        *kernel.UUID
	courierID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestDeliveryCommand creates a delivery request command. Exactly one
// of orgID and courierID must be non-nil.
func NewRequestDeliveryCommand(
	assignmentID, orderID, merchantID kernel.UUID,
	orgID, courierID *kernel.UUID,
) (RequestDeliveryCommand, error) {
	deliveryCommand := RequestDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveryCommand.setAssignmentID(assignmentID),
		deliveryCommand.setOrderID(orderID),
		deliveryCommand.setMerchantID(merchantID),
		deliveryCommand.setTarget(orgID, courierID),
	); err != nil {
		return RequestDeliveryCommand{}, err
	}

	return deliveryCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRequestDeliveryCommandIsNotConstructed)
}

// AssignmentID returns the caller-generated identifier for the new assignment.
func (c RequestDeliveryCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// OrderID returns the order to deliver.
func (c RequestDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MerchantID returns the requesting merchant.
func (c RequestDeliveryCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// OrgID returns the targeted delivery organization, or nil for direct assignment.
func (c RequestDeliveryCommand) OrgID() *kernel.UUID {
	return c.orgID
}

// CourierID returns the directly assigned delivery person, or nil for an
// organization request.
func (c RequestDeliveryCommand) CourierID() *kernel.UUID {
	return c.courierID
}

func (c *RequestDeliveryCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *RequestDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestDeliveryCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *RequestDeliveryCommand) setTarget(orgID, courierID *kernel.UUID) error {
	if (orgID == nil) == (courierID == nil) {
		return ErrDeliveryTargetIsInvalid
	}
	if orgID != nil {
		if err := orgID.Validate(); err != nil {
			return err
		}
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
	}

	c.orgID = orgID
	c.courierID = courierID
	return nil
}
