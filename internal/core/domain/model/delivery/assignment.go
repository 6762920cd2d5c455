package delivery

import (
	"errors"
	"fmt"
	"time"

	"urbanmart/internal/core/domain/model/kernel"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment was not
	// created through one of its constructors.
	ErrAssignmentIsNotConstructed = errors.New(
		"Assignment must be created via NewDeliveryRequest, NewDirectAssignment or RestoreAssignment constructor")

	// ErrDeliveryInProgress is returned when attempting to reassign a
	// delivery person once the assignment is in transit or completed.
	ErrDeliveryInProgress = errors.New("delivery is already in transit or completed")

	// ErrNoCourierAssigned is returned when advancing an assignment that has
	// no delivery person attached.
	ErrNoCourierAssigned = errors.New("assignment has no delivery person")
)

// Assignment links an order to a delivery person or delivery organization.
// Its status machine runs alongside the parent order's and drives the
// Confirmed/Shipped/Delivered transitions on it; the command layer applies
// both inside one unit of work so the pair can never diverge.
type Assignment struct {
	id         kernel.UUID
	orderID    kernel.UUID
	merchantID kernel.UUID
	orgID      *kernel.UUID
	courierID  *kernel.UUID
	status     Status
	createdAt  time.Time

	isConstructed bool
}

// NewDeliveryRequest creates an unclaimed assignment in Requested status:
// the merchant asked an organization to deliver the order.
func NewDeliveryRequest(id, orderID, merchantID, orgID kernel.UUID, now time.Time) (*Assignment, error) {
	a := &Assignment{
		status:        Requested,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setMerchantID(merchantID),
		orgID.Validate(),
	); err != nil {
		return nil, err
	}

	a.orgID = &orgID
	return a, nil
}

// NewDirectAssignment creates an assignment already in Assigned status:
// the merchant picked a delivery person directly.
func NewDirectAssignment(id, orderID, merchantID, courierID kernel.UUID, now time.Time) (*Assignment, error) {
	a := &Assignment{
		status:        Assigned,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setMerchantID(merchantID),
		courierID.Validate(),
	); err != nil {
		return nil, err
	}

	a.courierID = &courierID
	return a, nil
}

// RestoreAssignment reconstructs an assignment from persistence.
func RestoreAssignment(
	id, orderID, merchantID kernel.UUID,
	orgID, courierID *kernel.UUID,
	status Status,
	createdAt time.Time,
) (*Assignment, error) {
	a := &Assignment{
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setMerchantID(merchantID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	a.orgID = orgID
	a.courierID = courierID
	return a, nil
}

// Validate ensures the Assignment was created via a constructor.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID { return a.id }

// OrderID returns the parent order.
func (a *Assignment) OrderID() kernel.UUID { return a.orderID }

// MerchantID returns the merchant that requested delivery.
func (a *Assignment) MerchantID() kernel.UUID { return a.merchantID }

// OrgID returns the delivery organization handling the request, or nil for
// direct assignments.
func (a *Assignment) OrgID() *kernel.UUID { return a.orgID }

// CourierID returns the assigned delivery person, or nil while unclaimed.
func (a *Assignment) CourierID() *kernel.UUID { return a.courierID }

// Status returns the current workflow status.
func (a *Assignment) Status() Status { return a.status }

// CreatedAt returns when the assignment was created.
func (a *Assignment) CreatedAt() time.Time { return a.createdAt }

// AssignCourier attaches a delivery person and moves the assignment to
// Assigned. Reassignment is allowed while still Requested or Assigned, and
// rejected with ErrDeliveryInProgress once the delivery is underway or done.
func (a *Assignment) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	switch a.status {
	case Requested:
		a.status = Assigned
	case Assigned:
		// reassignment before pickup is allowed
	case InTransit, Completed:
		return fmt.Errorf("%w: assignment is %s", ErrDeliveryInProgress, a.status)
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidAssignmentTransition, a.status, Assigned)
	}

	a.courierID = &courierID
	return nil
}

// MarkInTransit records that the delivery person picked the order up.
func (a *Assignment) MarkInTransit() error {
	if a.courierID == nil {
		return ErrNoCourierAssigned
	}

	next, err := a.status.TransitionTo(InTransit)
	if err != nil {
		return err
	}
	a.status = next
	return nil
}

// MarkCompleted records that the delivery person delivered the order.
func (a *Assignment) MarkCompleted() error {
	if a.courierID == nil {
		return ErrNoCourierAssigned
	}

	next, err := a.status.TransitionTo(Completed)
	if err != nil {
		return err
	}
	a.status = next
	return nil
}

// Cancel aborts the assignment. Allowed from Requested or Assigned only.
func (a *Assignment) Cancel() error {
	next, err := a.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}
	a.status = next
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("orderID: %w", err)
	}
	a.orderID = id
	return nil
}

func (a *Assignment) setMerchantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("merchantID: %w", err)
	}
	a.merchantID = id
	return nil
}
