package commands

import (
	"errors"

	"swiftdrop/internal/pkg/guard"
)

var ErrReconcileRiderAvailabilityCommandIsNotConstructed = errors.New(
	"ReconcileRiderAvailabilityCommand must be created via NewReconcileRiderAvailabilityCommand constructor",
)

// ReconcileRiderAvailabilityCommand triggers one pass of the availability
// reconciliation sweep. It carries no parameters; the sweep always covers all
// busy riders.
type ReconcileRiderAvailabilityCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileRiderAvailabilityCommand creates a reconciliation trigger.
func NewReconcileRiderAvailabilityCommand() (ReconcileRiderAvailabilityCommand, error) {
	return ReconcileRiderAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileRiderAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrReconcileRiderAvailabilityCommandIsNotConstructed)
}
