package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"urbanmart/internal/core/domain/model/customer"
	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/order"
	"urbanmart/internal/core/domain/services"
	"urbanmart/internal/core/ports"
	"urbanmart/internal/pkg/errs"
)

// ErrInvalidAddress is returned when a checkout references an address that
// does not exist or belongs to another user.
var ErrInvalidAddress = errors.New("invalid address")

// orderCreatedEvent is the payload published under "order.created".
type orderCreatedEvent struct {
	OrderID    string  `json:"orderId"`
	CustomerID string  `json:"customerId"`
	MerchantID string  `json:"merchantId"`
	Total      float64 `json:"total"`
}

// CheckoutCommandHandler converts a cart into an order inside one
// transaction: order and line snapshots are created, stock is decremented
// with a conditional write, the merchant-customer aggregate is upserted and
// the cart is cleared. Either all of these effects commit or none do.
//
// After a successful commit the handler publishes "order.created" to the
// broker. Publishing is best effort; a broker failure is logged and the
// committed checkout stands.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the checkout command.
// Returns services.ErrCartIsEmpty for an empty cart, ErrInvalidAddress for an
// address the customer does not own, and product.ErrInsufficientStock when
// any line exceeds available stock. No partial effect survives a failure.
func (h CheckoutCommandHandler) Handle(ctx context.Context, command CheckoutCommand) error {
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

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.Get(ctx, command.CustomerID())
	if err != nil {
		return err
	}

	if err = h.checkAddressOwnership(ctx, uow, command); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	productIDs := make([]kernel.UUID, 0, len(userCart.Items()))
	for _, line := range userCart.Items() {
		productIDs = append(productIDs, line.ProductID())
	}
	products, err := productRepo.GetAll(ctx, productIDs)
	if err != nil {
		return err
	}

	result, err := services.NewCheckoutService().Checkout(userCart, products)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	newOrder, err := order.NewOrder(
		command.OrderID(),
		command.CustomerID(),
		result.MerchantID,
		result.Items,
		result.Totals,
		command.PaymentMethod(),
		command.ShippingAddressID(),
		command.BillingAddressID(),
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	for _, item := range result.Items {
		if err = productRepo.DecrementStock(ctx, item.ProductID(), item.Quantity()); err != nil {
			return err
		}
	}

	if err = h.upsertCustomerRelation(ctx, uow, command, result, now); err != nil {
		return err
	}

	userCart.Clear()
	if err = cartRepo.Save(ctx, userCart); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publishOrderCreated(ctx, newOrder)
	return nil
}

func (h CheckoutCommandHandler) checkAddressOwnership(
	ctx context.Context, uow CheckoutUoW, command CheckoutCommand,
) error {
	addressRepo := uow.AddressRepository()

	for _, addressID := range []kernel.UUID{command.ShippingAddressID(), command.BillingAddressID()} {
		addr, err := addressRepo.Get(ctx, addressID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrInvalidAddress
		}
		if err != nil {
			return err
		}
		if !addr.IsOwnedBy(command.CustomerID()) {
			return ErrInvalidAddress
		}
	}

	return nil
}

func (h CheckoutCommandHandler) upsertCustomerRelation(
	ctx context.Context,
	uow CheckoutUoW,
	command CheckoutCommand,
	result services.CheckoutResult,
	now time.Time,
) error {
	customerRepo := uow.CustomerRepository()

	relation, err := customerRepo.Get(ctx, command.CustomerID(), result.MerchantID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		relation, err = customer.NewRelation(command.CustomerID(), result.MerchantID)
	}
	if err != nil {
		return err
	}

	if err = relation.RecordOrder(result.Totals.Total, now); err != nil {
		return err
	}

	return customerRepo.Upsert(ctx, relation)
}

func (h CheckoutCommandHandler) publishOrderCreated(ctx context.Context, newOrder *order.Order) {
	event := orderCreatedEvent{
		OrderID:    newOrder.ID().String(),
		CustomerID: newOrder.CustomerID().String(),
		MerchantID: newOrder.MerchantID().String(),
		Total:      newOrder.Totals().Total.Amount(),
	}

	if err := h.publisher.Publish(ctx, "order.created", event); err != nil {
		h.logger.Warn("failed to publish order.created event",
			"orderID", newOrder.ID().String(), "error", err)
	}
}
