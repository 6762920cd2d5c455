// Package cartrepo persists cart lines. There is no cart row: a cart is the
// set of cart_items rows for a user, and Save replaces that set wholesale.
package cartrepo

import (
	"time"

	"github.com/google/uuid"

	"urbanmart/internal/core/domain/model/cart"
	"urbanmart/internal/core/domain/model/kernel"
)

// ItemDTO represents one stored cart line. The (user_id, product_id) pair is
// unique; quantities merge in the aggregate before saving.
type ItemDTO struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "cart_items".
func (ItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart aggregate to its line rows.
func fromDomain(aggregate *cart.Cart) []ItemDTO {
	items := aggregate.Items()
	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ItemDTO{
			UserID:    aggregate.UserID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
		})
	}
	return dtos
}

// toDomain converts stored line rows back into a cart aggregate.
func toDomain(userID kernel.UUID, dtos []ItemDTO) (*cart.Cart, error) {
	items := make([]cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
		if err != nil {
			return nil, err
		}
		item, err := cart.NewItem(productID, dto.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return cart.RestoreCart(userID, items)
}
