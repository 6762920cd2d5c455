package ports

import (
	"context"

	"urbanmart/internal/core/domain/model/address"
	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Emails are unique; Add reports a duplicate with an errs.ConflictError.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user aggregate by email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// AddressRepository defines the persistence contract for addresses.
type AddressRepository interface {
	// Add persists a new address to storage.
	Add(ctx context.Context, entity *address.Address) error

	// Get retrieves an address by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*address.Address, error)
}
