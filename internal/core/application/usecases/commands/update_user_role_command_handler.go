package commands

import (
	"context"
)

// UpdateUserRoleCommandHandler switches an account between sender and receiver.
type UpdateUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserRoleCommandHandler creates a handler for role changes.
func NewUpdateUserRoleCommandHandler(uowFactory UserUoWFactory) UpdateUserRoleCommandHandler {
	return UpdateUserRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role change command. Setting the role an account
// already has is a no-op that still succeeds.
func (h *UpdateUserRoleCommandHandler) Handle(ctx context.Context, cmd UpdateUserRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeRole(cmd.Role()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
