package commands

import (
	"context"

	"swiftdrop/internal/core/domain/model/user"

	"golang.org/x/crypto/bcrypt"
)

// RegisterUserCommandHandler handles user account registration.
// Hashes the password with bcrypt before the aggregate is created; phone
// uniqueness is enforced by the repository and surfaces as a conflict.
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
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	aggregate, err := user.NewUser(cmd.UserID(), cmd.Phone(), string(digest), cmd.Name(), cmd.Role())
	if err != nil {
		return err
	}

	aggregate.SetImageRef(cmd.ImageRef())
	aggregate.SetAddress(cmd.Address())
	if cmd.Location() != nil {
		if err = aggregate.SetLocation(*cmd.Location()); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
