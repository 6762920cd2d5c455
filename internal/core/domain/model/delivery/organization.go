package delivery

import (
	"errors"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/errs"
)

// ErrOrganizationIsNotConstructed is returned when an Organization was not
// created through NewOrganization or RestoreOrganization.
var ErrOrganizationIsNotConstructed = errors.New(
	"Organization must be created via NewOrganization or RestoreOrganization constructor")

// Organization is an independent delivery organization. Its owner (a
// delivery user) accepts merchant delivery requests and manages members
// through the hiring workflow.
type Organization struct {
	id       kernel.UUID
	name     string
	ownerID  kernel.UUID
	isActive bool

	isConstructed bool
}

// NewOrganization creates an active organization owned by a delivery user.
func NewOrganization(id kernel.UUID, name string, ownerID kernel.UUID) (*Organization, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	return &Organization{
		id:            id,
		name:          name,
		ownerID:       ownerID,
		isActive:      true,
		isConstructed: true,
	}, nil
}

// RestoreOrganization reconstructs an organization from persistence.
func RestoreOrganization(id kernel.UUID, name string, ownerID kernel.UUID, isActive bool) (*Organization, error) {
	org, err := NewOrganization(id, name, ownerID)
	if err != nil {
		return nil, err
	}
	org.isActive = isActive
	return org, nil
}

// Validate ensures the Organization was created via a constructor.
func (o *Organization) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrganizationIsNotConstructed
	}
	return nil
}

// ID returns the organization's unique identifier.
func (o *Organization) ID() kernel.UUID { return o.id }

// Name returns the organization name.
func (o *Organization) Name() string { return o.name }

// OwnerID returns the delivery user that owns the organization.
func (o *Organization) OwnerID() kernel.UUID { return o.ownerID }

// IsActive reports whether the organization accepts delivery requests.
func (o *Organization) IsActive() bool { return o.isActive }

// IsOwnedBy reports whether the given user owns the organization.
func (o *Organization) IsOwnedBy(userID kernel.UUID) bool {
	return o.ownerID.IsEqual(userID)
}

// Deactivate stops the organization from accepting new requests.
func (o *Organization) Deactivate() {
	o.isActive = false
}
