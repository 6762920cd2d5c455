// Package productrepo persists product aggregates. Stock decrements bypass
// the aggregate mapping and run as a conditional UPDATE so the non-negative
// stock invariant holds under concurrent checkouts.
package productrepo

import (
	"github.com/google/uuid"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting product aggregates.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID    uuid.UUID `gorm:"type:uuid;index"`
	Name          string
	Price         float64
	StockQuantity int
	IsActive      bool
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:            aggregate.ID().Bytes(),
		MerchantID:    aggregate.MerchantID().Bytes(),
		Name:          aggregate.Name(),
		Price:         aggregate.Price().Amount(),
		StockQuantity: aggregate.StockQuantity(),
		IsActive:      aggregate.IsActive(),
	}
}

// toDomain converts a database DTO back into a product aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, merchantID, dto.Name, price, dto.StockQuantity, dto.IsActive)
}
