package user

import (
	"fmt"

	"swiftdrop/internal/pkg/errs"
)

// Role tags an account as the originating or the receiving side of deliveries.
// The tag is mutable: an account can switch sides via the update-role operation.
type Role string

const (
	// RoleSender marks an account that originates deliveries.
	RoleSender Role = "Sender"
	// RoleReceiver marks an account that is the destination of deliveries.
	RoleReceiver Role = "Receiver"
)

// NewRole parses and validates a role string.
func NewRole(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate restricts the role to the two supported values.
func (r Role) Validate() error {
	if r != RoleSender && r != RoleReceiver {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%q is not a valid role, must be %q or %q", string(r), RoleSender, RoleReceiver),
		)
	}
	return nil
}

// String returns the role's string form.
func (r Role) String() string {
	return string(r)
}
