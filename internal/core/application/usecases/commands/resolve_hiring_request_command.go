package commands

import (
	"errors"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/guard"
)

var ErrResolveHiringRequestCommandIsNotConstructed = errors.New(
	"ResolveHiringRequestCommand must be created via NewResolveHiringRequestCommand constructor",
)

// ResolveHiringRequestCommand represents the counterpart's decision on a
// pending hiring request.
type ResolveHiringRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	actorID   kernel.UUID
	accept    bool

	guard guard.ConstructorGuard
}

// NewResolveHiringRequestCommand creates a resolution command.
func NewResolveHiringRequestCommand(requestID, actorID kernel.UUID, accept bool) (ResolveHiringRequestCommand, error) {
	resolveCommand := ResolveHiringRequestCommand{
		accept: accept,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		resolveCommand.setRequestID(requestID),
		resolveCommand.setActorID(actorID),
	); err != nil {
		return ResolveHiringRequestCommand{}, err
	}

	return resolveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveHiringRequestCommand) Validate() error {
	return c.guard.Validate(ErrResolveHiringRequestCommandIsNotConstructed)
}

// RequestID returns the hiring request to resolve.
func (c ResolveHiringRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ActorID returns the deciding user.
func (c ResolveHiringRequestCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Accept reports whether the request is accepted or rejected.
func (c ResolveHiringRequestCommand) Accept() bool {
	return c.accept
}

func (c *ResolveHiringRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *ResolveHiringRequestCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
