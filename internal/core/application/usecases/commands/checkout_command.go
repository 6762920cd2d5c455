package commands

import (
	"errors"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrPaymentMethodIsRequired = errors.New("payment method is required")
)

// CheckoutCommand represents a request to convert a customer's cart into an
// order. The order identifier is generated by the caller so the response can
// reference it without a round trip.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCheckoutCommand(orderID, customerID, "card", shippingID, billingID)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, publisher, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	customerID        kernel.UUID
	paymentMethod     string
	shippingAddressID kernel.UUID
	billingAddressID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command, validating every identifier
// and the payment method.
func NewCheckoutCommand(
	orderID, customerID kernel.UUID,
	paymentMethod string,
	shippingAddressID, billingAddressID kernel.UUID,
) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setOrderID(orderID),
		checkoutCommand.setCustomerID(customerID),
		checkoutCommand.setPaymentMethod(paymentMethod),
		checkoutCommand.setAddresses(shippingAddressID, billingAddressID),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the caller-generated identifier for the new order.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the purchasing customer.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PaymentMethod returns the chosen payment method.
func (c CheckoutCommand) PaymentMethod() string {
	return c.paymentMethod
}

// ShippingAddressID returns the shipping address reference.
func (c CheckoutCommand) ShippingAddressID() kernel.UUID {
	return c.shippingAddressID
}

// BillingAddressID returns the billing address reference.
func (c CheckoutCommand) BillingAddressID() kernel.UUID {
	return c.billingAddressID
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return ErrPaymentMethodIsRequired
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CheckoutCommand) setAddresses(shippingID, billingID kernel.UUID) error {
	if err := shippingID.Validate(); err != nil {
		return err
	}
	if err := billingID.Validate(); err != nil {
		return err
	}

	c.shippingAddressID = shippingID
	c.billingAddressID = billingID
	return nil
}
