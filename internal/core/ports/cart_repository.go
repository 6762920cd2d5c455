package ports

import (
	"context"

	"urbanmart/internal/core/domain/model/cart"
	"urbanmart/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// A user always has a cart; a user with no stored lines gets an empty one.
type CartRepository interface {
	// Get retrieves the cart for a user. Returns an empty cart when the user
	// has no stored lines.
	Get(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// Save replaces the user's stored lines with the aggregate's current
	// lines. Saving a cleared cart deletes every line.
	Save(ctx context.Context, aggregate *cart.Cart) error
}
