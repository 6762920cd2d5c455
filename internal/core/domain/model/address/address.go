// Package address provides the Address entity referenced by order shipping
// and billing fields. Checkout verifies ownership before snapshotting the ids.
package address

import (
	"errors"
	"fmt"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through NewAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a user-owned postal address.
type Address struct {
	id         kernel.UUID
	userID     kernel.UUID
	street     string
	city       string
	postalCode string
	country    string

	isConstructed bool
}

// NewAddress creates an address owned by a user.
func NewAddress(id, userID kernel.UUID, street, city, postalCode, country string) (*Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := userID.Validate(); err != nil {
		return nil, fmt.Errorf("userID: %w", err)
	}
	if street == "" {
		return nil, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return nil, errs.NewValueIsRequiredError("city")
	}

	return &Address{
		id:            id,
		userID:        userID,
		street:        street,
		city:          city,
		postalCode:    postalCode,
		country:       country,
		isConstructed: true,
	}, nil
}

// Validate ensures the Address was created via a constructor.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// ID returns the address identifier.
func (a *Address) ID() kernel.UUID { return a.id }

// UserID returns the owning user.
func (a *Address) UserID() kernel.UUID { return a.userID }

// Street returns the street line.
func (a *Address) Street() string { return a.street }

// City returns the city.
func (a *Address) City() string { return a.city }

// PostalCode returns the postal code.
func (a *Address) PostalCode() string { return a.postalCode }

// Country returns the country.
func (a *Address) Country() string { return a.country }

// IsOwnedBy reports whether the address belongs to the given user.
func (a *Address) IsOwnedBy(userID kernel.UUID) bool {
	return a.userID.IsEqual(userID)
}
