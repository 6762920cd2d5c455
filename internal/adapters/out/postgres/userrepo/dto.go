// Package userrepo persists user aggregates. Emails carry a unique
// constraint; duplicates surface as conflict errors.
package userrepo

import (
	"time"

	"github.com/google/uuid"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user aggregates.
type UserDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"uniqueIndex"`
	Name          string
	PasswordHash  string
	Role          string `gorm:"index"`
	IsActive      bool
	DeliveryOrgID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	var deliveryOrgID *uuid.UUID
	if id := aggregate.DeliveryOrgID(); id != nil {
		raw := id.Bytes()
		deliveryOrgID = &raw
	}

	return UserDTO{
		ID:            aggregate.ID().Bytes(),
		Email:         aggregate.Email(),
		Name:          aggregate.Name(),
		PasswordHash:  aggregate.PasswordHash(),
		Role:          aggregate.Role().String(),
		IsActive:      aggregate.IsActive(),
		DeliveryOrgID: deliveryOrgID,
	}
}

// toDomain converts a database DTO back into a user aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	var deliveryOrgID *kernel.UUID
	if dto.DeliveryOrgID != nil {
		orgID, orgErr := kernel.UUIDFromBytes((*dto.DeliveryOrgID)[:])
		if orgErr != nil {
			return nil, orgErr
		}
		deliveryOrgID = &orgID
	}

	return user.RestoreUser(id, dto.Email, dto.Name, dto.PasswordHash, role, dto.IsActive, deliveryOrgID)
}
