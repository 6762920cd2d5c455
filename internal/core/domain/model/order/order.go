package order

import (
	"errors"
	"fmt"
	"time"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoItems is returned when constructing an order without line items.
	ErrOrderHasNoItems = errors.New("order must have at least one item")

	// ErrTotalMismatch is returned when total != subtotal + tax + shipping.
	ErrTotalMismatch = errors.New("order total does not equal subtotal + tax + shipping")
)

// Totals carries the monetary breakdown of an order. The invariant
// total == subtotal + tax + shipping is checked on construction.
type Totals struct {
	Subtotal kernel.Money
	Tax      kernel.Money
	Shipping kernel.Money
	Total    kernel.Money
}

// Validate checks that each amount is constructed and the sum invariant holds.
func (t Totals) Validate() error {
	if err := errors.Join(
		t.Subtotal.Validate(),
		t.Tax.Validate(),
		t.Shipping.Validate(),
		t.Total.Validate(),
	); err != nil {
		return err
	}

	if !t.Subtotal.Add(t.Tax).Add(t.Shipping).IsEqual(t.Total) {
		return fmt.Errorf("%w: %s + %s + %s != %s",
			ErrTotalMismatch, t.Subtotal, t.Tax, t.Shipping, t.Total)
	}
	return nil
}

// Order is an immutable purchase snapshot plus a mutable lifecycle status.
// Line items and totals are frozen at checkout; only the status (with its
// append-only history), tracking data and delivery attribution change
// afterwards. Orders are never deleted.
//
// Invariants:
//   - at least one line item
//   - total == subtotal + tax + shipping
//   - exactly one history entry appended per status transition
//   - status changes follow the lifecycle graph in Status
type Order struct {
	id                kernel.UUID
	customerID        kernel.UUID
	merchantID        kernel.UUID
	items             []Item
	totals            Totals
	paymentMethod     string
	shippingAddressID kernel.UUID
	billingAddressID  kernel.UUID
	status            Status
	trackingNumber    string
	shippedAt         *time.Time
	deliveredAt       *time.Time
	deliveryUserID    *kernel.UUID
	createdAt         time.Time
	history           []StatusChange

	isConstructed bool
}

// NewOrder creates an order in Pending status and records the initial
// history entry attributed to the customer.
func NewOrder(
	id, customerID, merchantID kernel.UUID,
	items []Item,
	totals Totals,
	paymentMethod string,
	shippingAddressID, billingAddressID kernel.UUID,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setMerchantID(merchantID),
		o.setItems(items),
		o.setTotals(totals),
		o.setPaymentMethod(paymentMethod),
		o.setAddresses(shippingAddressID, billingAddressID),
	); err != nil {
		return nil, err
	}

	o.history = append(o.history, newStatusChange(Pending, "Order placed", customerID, now))
	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its full state
// and history. No initial history entry is added.
func RestoreOrder(
	id, customerID, merchantID kernel.UUID,
	items []Item,
	totals Totals,
	paymentMethod string,
	shippingAddressID, billingAddressID kernel.UUID,
	status Status,
	trackingNumber string,
	shippedAt, deliveredAt *time.Time,
	deliveryUserID *kernel.UUID,
	createdAt time.Time,
	history []StatusChange,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setMerchantID(merchantID),
		o.setItems(items),
		o.setTotals(totals),
		o.setPaymentMethod(paymentMethod),
		o.setAddresses(shippingAddressID, billingAddressID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.trackingNumber = trackingNumber
	o.shippedAt = shippedAt
	o.deliveredAt = deliveredAt
	o.deliveryUserID = deliveryUserID
	o.history = append(o.history, history...)
	return o, nil
}

// Validate ensures the Order was created via a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the purchasing customer.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// MerchantID returns the merchant the order was placed with.
func (o *Order) MerchantID() kernel.UUID { return o.merchantID }

// Items returns a copy of the immutable line snapshots.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Totals returns the monetary breakdown frozen at checkout.
func (o *Order) Totals() Totals { return o.totals }

// PaymentMethod returns the payment method chosen at checkout.
func (o *Order) PaymentMethod() string { return o.paymentMethod }

// ShippingAddressID returns the shipping address reference.
func (o *Order) ShippingAddressID() kernel.UUID { return o.shippingAddressID }

// BillingAddressID returns the billing address reference.
func (o *Order) BillingAddressID() kernel.UUID { return o.billingAddressID }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// TrackingNumber returns the carrier tracking number, if any.
func (o *Order) TrackingNumber() string { return o.trackingNumber }

// ShippedAt returns when the order was marked shipped, or nil.
func (o *Order) ShippedAt() *time.Time { return o.shippedAt }

// DeliveredAt returns when the order was marked delivered, or nil.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// DeliveryUser returns the delivery person that completed the order, or nil.
func (o *Order) DeliveryUser() *kernel.UUID { return o.deliveryUserID }

// CreatedAt returns the checkout time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// History returns a copy of the append-only status history, oldest first.
func (o *Order) History() []StatusChange {
	history := make([]StatusChange, len(o.history))
	copy(history, o.history)
	return history
}

// ChangeStatus moves the order to the target status, validating the move
// against the lifecycle graph, stamping shippedAt/deliveredAt on the Shipped
// and Delivered transitions, and appending exactly one history entry.
func (o *Order) ChangeStatus(target Status, changedBy kernel.UUID, notes string, now time.Time) error {
	if err := changedBy.Validate(); err != nil {
		return err
	}

	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	switch next {
	case Shipped:
		if o.shippedAt == nil {
			o.shippedAt = &now
		}
	case Delivered:
		if o.deliveredAt == nil {
			o.deliveredAt = &now
		}
	}

	o.history = append(o.history, newStatusChange(next, notes, changedBy, now))
	return nil
}

// SetTrackingNumber attaches a carrier tracking number.
func (o *Order) SetTrackingNumber(trackingNumber string) {
	o.trackingNumber = trackingNumber
}

// AttachDeliveryUser records the delivery person responsible for the order.
func (o *Order) AttachDeliveryUser(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.deliveryUserID = &userID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("customerID: %w", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setMerchantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("merchantID: %w", err)
	}
	o.merchantID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotals(totals Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}
	o.totals = totals
	return nil
}

func (o *Order) setPaymentMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setAddresses(shippingID, billingID kernel.UUID) error {
	if err := shippingID.Validate(); err != nil {
		return fmt.Errorf("shippingAddressID: %w", err)
	}
	if err := billingID.Validate(); err != nil {
		return fmt.Errorf("billingAddressID: %w", err)
	}
	o.shippingAddressID = shippingID
	o.billingAddressID = billingID
	return nil
}
