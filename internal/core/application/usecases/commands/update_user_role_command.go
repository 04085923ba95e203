package commands

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/pkg/guard"
)

var ErrUpdateUserRoleCommandIsNotConstructed = errors.New(
	"UpdateUserRoleCommand must be created via NewUpdateUserRoleCommand constructor",
)

// UpdateUserRoleCommand represents a request to switch an account between the
// sender and receiver roles.
type UpdateUserRoleCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   user.Role

	guard guard.ConstructorGuard
}

// NewUpdateUserRoleCommand creates a command to change a user's role.
func NewUpdateUserRoleCommand(userID kernel.UUID, role user.Role) (UpdateUserRoleCommand, error) {
	cmd := UpdateUserRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setRole(role),
	); err != nil {
		return UpdateUserRoleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserRoleCommandIsNotConstructed)
}

// UserID returns the identifier of the account to change.
func (c UpdateUserRoleCommand) UserID() kernel.UUID {
	return c.userID
}

// Role returns the role to switch to.
func (c UpdateUserRoleCommand) Role() user.Role {
	return c.role
}

func (c *UpdateUserRoleCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateUserRoleCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
