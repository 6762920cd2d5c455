package ports

import (
	"context"

	"urbanmart/internal/core/domain/model/customer"
	"urbanmart/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for the per-(customer,
// merchant) relationship aggregate.
type CustomerRepository interface {
	// Get retrieves the relation for a (customer, merchant) pair. Returns an
	// ObjectNotFoundError when the pair has no history yet.
	Get(ctx context.Context, customerID, merchantID kernel.UUID) (*customer.Relation, error)

	// Upsert inserts or replaces the relation for the aggregate's pair.
	Upsert(ctx context.Context, aggregate *customer.Relation) error
}
