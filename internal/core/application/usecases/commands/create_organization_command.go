package commands

import (
	"errors"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/errs"
	"urbanmart/internal/pkg/guard"
)

var ErrCreateOrganizationCommandIsNotConstructed = errors.New(
	"CreateOrganizationCommand must be created via NewCreateOrganizationCommand constructor",
)

// CreateOrganizationCommand represents a request to found a delivery
// organization owned by the acting delivery user.
type CreateOrganizationCommand struct { //nolint:recvcheck //using for validation
	orgID   kernel.UUID
	name    string
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrganizationCommand creates an organization creation command.
func NewCreateOrganizationCommand(orgID kernel.UUID, name string, ownerID kernel.UUID) (CreateOrganizationCommand, error) {
	orgCommand := CreateOrganizationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orgCommand.setOrgID(orgID),
		orgCommand.setName(name),
		orgCommand.setOwnerID(ownerID),
	); err != nil {
		return CreateOrganizationCommand{}, err
	}

	return orgCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrganizationCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrganizationCommandIsNotConstructed)
}

// OrgID returns the caller-generated identifier for the new organization.
func (c CreateOrganizationCommand) OrgID() kernel.UUID {
	return c.orgID
}

// Name returns the organization name.
func (c CreateOrganizationCommand) Name() string {
	return c.name
}

// OwnerID returns the founding delivery user.
func (c CreateOrganizationCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *CreateOrganizationCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}

	c.orgID = orgID
	return nil
}

func (c *CreateOrganizationCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateOrganizationCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}
