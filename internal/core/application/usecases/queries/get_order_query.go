package queries

import (
	"errors"
	"time"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/user"
	"urbanmart/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its line items. Only the
// order's customer, the order's merchant, its assigned courier or an admin
// may read it.
type GetOrderQuery struct {
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole user.Role

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates an order detail query.
func NewGetOrderQuery(orderID, actorID kernel.UUID, actorRole user.Role) (GetOrderQuery, error) {
	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:   orderID,
		actorID:   actorID,
		actorRole: actorRole,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActorID returns the requesting user.
func (q GetOrderQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ActorRole returns the requesting user's role.
func (q GetOrderQuery) ActorRole() user.Role {
	return q.actorRole
}

// GetOrderQueryResponse represents a single order with its items.
type GetOrderQueryResponse struct {
	ID             string              `json:"id"`
	CustomerID     string              `json:"customerId"`
	MerchantID     string              `json:"merchantId"`
	Status         string              `json:"status"`
	Items          []OrderItemResponse `json:"items"`
	Subtotal       float64             `json:"subtotal"`
	Tax            float64             `json:"tax"`
	Shipping       float64             `json:"shipping"`
	Total          float64             `json:"total"`
	PaymentMethod  string              `json:"paymentMethod"`
	TrackingNumber string              `json:"trackingNumber,omitempty"`
	DeliveryUserID string              `json:"deliveryUserId,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	ShippedAt      *time.Time          `json:"shippedAt,omitempty"`
	DeliveredAt    *time.Time          `json:"deliveredAt,omitempty"`
}

// OrderItemResponse represents one order line with its price snapshot.
type OrderItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}
