package ports

import (
	"context"
	"time"

	"urbanmart/internal/core/domain/model/delivery"
	"urbanmart/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for delivery
// assignment aggregates.
type AssignmentRepository interface {
	// Add persists a new assignment aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Assignment) error

	// Update persists changes to an existing assignment aggregate.
	Update(ctx context.Context, aggregate *delivery.Assignment) error

	// Get retrieves an assignment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Assignment, error)

	// GetByOrderID retrieves the assignment linked to an order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Assignment, error)

	// GetAllRequestedBefore retrieves assignments still in Requested status
	// created before the cutoff. Used by the stale-request cancellation job.
	GetAllRequestedBefore(ctx context.Context, cutoff time.Time) ([]*delivery.Assignment, error)
}

// OrganizationRepository defines the persistence contract for delivery
// organization aggregates. Organization names are unique; Add reports a
// duplicate with an errs.ConflictError.
type OrganizationRepository interface {
	// Add persists a new organization aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Organization) error

	// Update persists changes to an existing organization aggregate.
	Update(ctx context.Context, aggregate *delivery.Organization) error

	// Get retrieves an organization aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Organization, error)

	// GetByOwner retrieves the organization owned by the given user.
	GetByOwner(ctx context.Context, ownerID kernel.UUID) (*delivery.Organization, error)
}
