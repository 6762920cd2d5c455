package commands

import (
	"errors"

	"urbanmart/internal/core/domain/model/hiring"
	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/guard"
)

var ErrCreateHiringRequestCommandIsNotConstructed = errors.New(
	"CreateHiringRequestCommand must be created via NewCreateHiringRequestCommand constructor",
)

// CreateHiringRequestCommand represents a request to open membership
// negotiations between a delivery person and an organization: an owner's
// invitation or a delivery person's application, depending on the kind.
type CreateHiringRequestCommand struct { //nolint:recvcheck //using for validation
	requestID      kernel.UUID
	orgID          kernel.UUID
	deliveryUserID kernel.UUID
	kind           hiring.Kind
	actorID        kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateHiringRequestCommand creates a hiring request command.
func NewCreateHiringRequestCommand(
	requestID, orgID, deliveryUserID kernel.UUID,
	kind hiring.Kind,
	actorID kernel.UUID,
) (CreateHiringRequestCommand, error) {
	hiringCommand := CreateHiringRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		hiringCommand.setRequestID(requestID),
		hiringCommand.setOrgID(orgID),
		hiringCommand.setDeliveryUserID(deliveryUserID),
		hiringCommand.setKind(kind),
		hiringCommand.setActorID(actorID),
	); err != nil {
		return CreateHiringRequestCommand{}, err
	}

	return hiringCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateHiringRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateHiringRequestCommandIsNotConstructed)
}

// RequestID returns the caller-generated identifier for the new request.
func (c CreateHiringRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// OrgID returns the organization involved.
func (c CreateHiringRequestCommand) OrgID() kernel.UUID {
	return c.orgID
}

// DeliveryUserID returns the delivery person involved.
func (c CreateHiringRequestCommand) DeliveryUserID() kernel.UUID {
	return c.deliveryUserID
}

// Kind returns whether the request is an invitation or an application.
func (c CreateHiringRequestCommand) Kind() hiring.Kind {
	return c.kind
}

// ActorID returns the user creating the request.
func (c CreateHiringRequestCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *CreateHiringRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *CreateHiringRequestCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}

	c.orgID = orgID
	return nil
}

func (c *CreateHiringRequestCommand) setDeliveryUserID(deliveryUserID kernel.UUID) error {
	if err := deliveryUserID.Validate(); err != nil {
		return err
	}

	c.deliveryUserID = deliveryUserID
	return nil
}

func (c *CreateHiringRequestCommand) setKind(kind hiring.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CreateHiringRequestCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
