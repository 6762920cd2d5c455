package ports

import (
	"context"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves the product aggregates for the given identifiers.
	// A missing identifier is not an error; callers check the result set.
	GetAll(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// DecrementStock atomically removes qty units from a product's stock with
	// a conditional write that never takes the quantity below zero. Returns
	// product.ErrInsufficientStock when the condition fails.
	DecrementStock(ctx context.Context, id kernel.UUID, qty int) error
}
