package queries

import (
	"errors"
	"time"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/user"
	"urbanmart/internal/pkg/guard"
)

var ErrGetOrderStatusHistoryQueryIsNotConstructed = errors.New(
	"GetOrderStatusHistoryQuery must be created via NewGetOrderStatusHistoryQuery constructor",
)

// GetOrderStatusHistoryQuery retrieves the append-only status history of an
// order, oldest first. Only the order's customer, the order's merchant or an
// admin may read it.
type GetOrderStatusHistoryQuery struct {
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole user.Role

	guard guard.ConstructorGuard
}

// NewGetOrderStatusHistoryQuery creates a status history query.
func NewGetOrderStatusHistoryQuery(
	orderID, actorID kernel.UUID,
	actorRole user.Role,
) (GetOrderStatusHistoryQuery, error) {
	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return GetOrderStatusHistoryQuery{}, err
	}

	return GetOrderStatusHistoryQuery{
		orderID:   orderID,
		actorID:   actorID,
		actorRole: actorRole,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusHistoryQueryIsNotConstructed)
}

// OrderID returns the order whose history is requested.
func (q GetOrderStatusHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActorID returns the requesting user.
func (q GetOrderStatusHistoryQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ActorRole returns the requesting user's role.
func (q GetOrderStatusHistoryQuery) ActorRole() user.Role {
	return q.actorRole
}

// StatusChangeResponse represents one status history row.
type StatusChangeResponse struct {
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	ChangedBy string    `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
}
