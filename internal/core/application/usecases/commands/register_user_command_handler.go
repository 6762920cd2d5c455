package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"urbanmart/internal/core/domain/model/user"
)

// RegisterUserCommandHandler creates a new user account with a bcrypt
// password hash. Duplicate emails are rejected by the storage layer's unique
// index and surface as a conflict.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, command RegisterUserCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(command.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	newUser, err := user.NewUser(
		command.UserID(), command.Email(), command.Name(), string(hash), command.Role())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, newUser); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
