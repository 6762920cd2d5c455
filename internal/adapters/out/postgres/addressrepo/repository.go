// Package addressrepo persists user addresses.
package addressrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"urbanmart/internal/core/domain/model/address"
	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/errs"
)

// AddressDTO represents the database structure for persisting addresses.
type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;index"`
	Street     string
	City       string
	PostalCode string
	Country    string
}

// TableName overrides GORM's default naming to use "addresses".
func (AddressDTO) TableName() string {
	return "addresses"
}

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GORM address repository.
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// Add saves a new address to the database.
func (r *GormAddressRepository) Add(ctx context.Context, entity *address.Address) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := AddressDTO{
		ID:         entity.ID().Bytes(),
		UserID:     entity.UserID().Bytes(),
		Street:     entity.Street(),
		City:       entity.City(),
		PostalCode: entity.PostalCode(),
		Country:    entity.Country(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an address by ID.
func (r *GormAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id.String())
		}
		return nil, err
	}

	addrID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return address.NewAddress(addrID, userID, dto.Street, dto.City, dto.PostalCode, dto.Country)
}
