// Package hiringrepo persists hiring request aggregates. A partial unique
// index on (org_id, delivery_user_id, kind) for pending rows enforces the
// one-pending-request rule at the database level, closing the race between
// two concurrent submissions.
package hiringrepo

import (
	"time"

	"github.com/google/uuid"

	"urbanmart/internal/core/domain/model/hiring"
	"urbanmart/internal/core/domain/model/kernel"
)

// RequestDTO represents the database structure for persisting hiring requests.
type RequestDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID          uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_hiring_requests_pending,where:status = 'PENDING'"`
	DeliveryUserID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_hiring_requests_pending"`
	Kind           string    `gorm:"uniqueIndex:idx_hiring_requests_pending"`
	Status         string    `gorm:"index"`
	CreatedAt      time.Time
}

// TableName overrides GORM's default naming to use "hiring_requests".
func (RequestDTO) TableName() string {
	return "hiring_requests"
}

// fromDomain converts a hiring request aggregate to its database representation.
func fromDomain(aggregate *hiring.Request) RequestDTO {
	return RequestDTO{
		ID:             aggregate.ID().Bytes(),
		OrgID:          aggregate.OrgID().Bytes(),
		DeliveryUserID: aggregate.DeliveryUserID().Bytes(),
		Kind:           aggregate.Kind().String(),
		Status:         aggregate.Status().String(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO back into a hiring request aggregate.
func toDomain(dto RequestDTO) (*hiring.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orgID, err := kernel.UUIDFromBytes(dto.OrgID[:])
	if err != nil {
		return nil, err
	}
	deliveryUserID, err := kernel.UUIDFromBytes(dto.DeliveryUserID[:])
	if err != nil {
		return nil, err
	}

	kind, err := hiring.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}

	status, err := hiring.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return hiring.RestoreRequest(id, orgID, deliveryUserID, kind, status, dto.CreatedAt)
}
