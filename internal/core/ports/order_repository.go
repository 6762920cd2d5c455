package ports

import (
	"context"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are written with their line items and full status history; items
// never change after creation and history rows are append-only.
type OrderRepository interface {
	// Add persists a new order aggregate with its items and initial history.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate: status,
	// tracking data, timestamps, delivery attribution and any history rows
	// appended since the aggregate was loaded.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// line items and status history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
