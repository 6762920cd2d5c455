package cartrepo

import (
	"context"

	"gorm.io/gorm"

	"urbanmart/internal/core/domain/model/cart"
	"urbanmart/internal/core/domain/model/kernel"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Get retrieves the cart for a user. A user with no stored lines gets an
// empty cart, never an error.
func (r *GormCartRepository) Get(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ItemDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomain(userID, dtos)
}

// Save replaces the user's stored lines with the aggregate's current lines.
// Saving a cleared cart deletes every line.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	err := db.Delete(&ItemDTO{}, "user_id = ?", aggregate.UserID().Bytes()).Error
	if err != nil {
		return err
	}

	dtos := fromDomain(aggregate)
	if len(dtos) == 0 {
		return nil
	}

	return db.Create(&dtos).Error
}
