package user

import (
	"fmt"

	"urbanmart/internal/pkg/errs"
)

// Role determines which workflows a user may invoke. Every authenticated
// request carries exactly one role, checked by the HTTP middleware and again
// by command handlers that enforce ownership.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// Customer browses the catalog, manages a cart, and places orders.
	Customer

	// Merchant owns a storefront: manages products and merchant-scoped orders.
	Merchant

	// Delivery is a delivery person, optionally a member of a delivery organization.
	Delivery

	// Admin has full administrative oversight.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Customer: "CUSTOMER",
		Merchant: "MERCHANT",
		Delivery: "DELIVERY",
		Admin:    "ADMIN",
	}
}

// ParseRole converts the wire representation ("CUSTOMER", "MERCHANT",
// "DELIVERY", "ADMIN") into a Role.
func ParseRole(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the role is one of the defined values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}
