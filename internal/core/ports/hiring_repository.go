package ports

import (
	"context"

	"urbanmart/internal/core/domain/model/hiring"
	"urbanmart/internal/core/domain/model/kernel"
)

// HiringRequestRepository defines the persistence contract for hiring request
// aggregates. A partial unique index on (org_id, delivery_user_id) for pending
// rows enforces the one-pending-request rule; Add reports a duplicate with an
// errs.ConflictError.
type HiringRequestRepository interface {
	// Add persists a new hiring request aggregate to storage.
	Add(ctx context.Context, aggregate *hiring.Request) error

	// Update persists changes to an existing hiring request aggregate.
	Update(ctx context.Context, aggregate *hiring.Request) error

	// Get retrieves a hiring request aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*hiring.Request, error)
}
