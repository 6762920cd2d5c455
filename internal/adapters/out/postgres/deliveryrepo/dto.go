// Package deliveryrepo persists delivery assignment and delivery
// organization aggregates. Organization names carry a unique constraint;
// duplicates surface as conflict errors.
package deliveryrepo

import (
	"time"

	"github.com/google/uuid"

	"urbanmart/internal/core/domain/model/delivery"
	"urbanmart/internal/core/domain/model/kernel"
)

// AssignmentDTO represents the database structure for persisting delivery
// assignments. An order carries at most one assignment, enforced by the
// unique index on order_id.
type AssignmentDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	MerchantID uuid.UUID  `gorm:"type:uuid;index"`
	OrgID      *uuid.UUID `gorm:"type:uuid;index"`
	CourierID  *uuid.UUID `gorm:"type:uuid;index"`
	Status     string     `gorm:"index"`
	CreatedAt  time.Time
}

// TableName overrides GORM's default naming to use "delivery_assignments".
func (AssignmentDTO) TableName() string {
	return "delivery_assignments"
}

// OrganizationDTO represents the database structure for persisting delivery
// organizations.
type OrganizationDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"uniqueIndex"`
	OwnerID  uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	IsActive bool
}

// TableName overrides GORM's default naming to use "delivery_organizations".
func (OrganizationDTO) TableName() string {
	return "delivery_organizations"
}

func assignmentFromDomain(aggregate *delivery.Assignment) AssignmentDTO {
	var orgID *uuid.UUID
	if id := aggregate.OrgID(); id != nil {
		raw := id.Bytes()
		orgID = &raw
	}

	var courierID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return AssignmentDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    aggregate.OrderID().Bytes(),
		MerchantID: aggregate.MerchantID().Bytes(),
		OrgID:      orgID,
		CourierID:  courierID,
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

func assignmentToDomain(dto AssignmentDTO) (*delivery.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	var orgID *kernel.UUID
	if dto.OrgID != nil {
		oID, oErr := kernel.UUIDFromBytes((*dto.OrgID)[:])
		if oErr != nil {
			return nil, oErr
		}
		orgID = &oID
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, cErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if cErr != nil {
			return nil, cErr
		}
		courierID = &cID
	}

	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreAssignment(id, orderID, merchantID, orgID, courierID, status, dto.CreatedAt)
}

func organizationFromDomain(aggregate *delivery.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		OwnerID:  aggregate.OwnerID().Bytes(),
		IsActive: aggregate.IsActive(),
	}
}

func organizationToDomain(dto OrganizationDTO) (*delivery.Organization, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreOrganization(id, dto.Name, ownerID, dto.IsActive)
}
