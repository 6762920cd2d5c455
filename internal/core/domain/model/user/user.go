// Package user provides the User aggregate and the marketplace role model.
// Users are never hard-deleted: deactivation flips the isActive flag while
// orders and history keep referencing the row.
package user

import (
	"errors"
	"fmt"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User was not created through
	// NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

	// ErrAlreadyOrgMember is returned when a delivery person who already
	// belongs to an organization attempts to join another one.
	ErrAlreadyOrgMember = errors.New("user is already a member of a delivery organization")

	// ErrNotDeliveryRole is returned when organization membership is attempted
	// for a user that is not a delivery person.
	ErrNotDeliveryRole = errors.New("only delivery users can join a delivery organization")
)

// User is the identity aggregate. Role is fixed at registration (admins may
// change it through the admin surface); deliveryOrgID is only meaningful for
// the Delivery role and is mutated by the hiring workflow.
type User struct {
	id            kernel.UUID
	email         string
	name          string
	passwordHash  string
	role          Role
	isActive      bool
	deliveryOrgID *kernel.UUID

	isConstructed bool
}

// NewUser creates an active user with the given identity and role.
func NewUser(id kernel.UUID, email, name, passwordHash string, role Role) (*User, error) {
	u := &User{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence, including membership and
// activation state.
func RestoreUser(
	id kernel.UUID,
	email, name, passwordHash string,
	role Role,
	isActive bool,
	deliveryOrgID *kernel.UUID,
) (*User, error) {
	u, err := NewUser(id, email, name, passwordHash, role)
	if err != nil {
		return nil, err
	}

	u.isActive = isActive
	u.deliveryOrgID = deliveryOrgID
	return u, nil
}

// Validate ensures the User was created via a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Email returns the login email.
func (u *User) Email() string { return u.email }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// PasswordHash returns the bcrypt hash of the user's password.
func (u *User) PasswordHash() string { return u.passwordHash }

// Role returns the user's marketplace role.
func (u *User) Role() Role { return u.role }

// IsActive reports whether the account is active.
func (u *User) IsActive() bool { return u.isActive }

// DeliveryOrgID returns the delivery organization the user belongs to,
// or nil for non-members.
func (u *User) DeliveryOrgID() *kernel.UUID { return u.deliveryOrgID }

// JoinDeliveryOrg records organization membership for a delivery person.
// A user may belong to at most one organization at a time.
func (u *User) JoinDeliveryOrg(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	if u.role != Delivery {
		return ErrNotDeliveryRole
	}
	if u.deliveryOrgID != nil {
		return ErrAlreadyOrgMember
	}

	u.deliveryOrgID = &orgID
	return nil
}

// LeaveDeliveryOrg clears organization membership.
func (u *User) LeaveDeliveryOrg() {
	u.deliveryOrgID = nil
}

// Deactivate soft-deletes the account.
func (u *User) Deactivate() {
	u.isActive = false
}

// ChangeRole updates the user's role. Admin-only on the HTTP surface.
func (u *User) ChangeRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return fmt.Errorf("user role: %w", err)
	}
	u.role = role
	return nil
}
