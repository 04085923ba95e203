package commands

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/guard"
)

var ErrSetRiderLocationCommandIsNotConstructed = errors.New(
	"SetRiderLocationCommand must be created via NewSetRiderLocationCommand constructor",
)

// SetRiderLocationCommand represents a rider position report.
type SetRiderLocationCommand struct { //nolint:recvcheck //using for validation
	riderID  kernel.UUID
	location kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewSetRiderLocationCommand creates a command to update a rider's position.
// Unlike the optional points elsewhere, the location here is mandatory and
// must carry valid coordinates.
func NewSetRiderLocationCommand(
	riderID kernel.UUID, location kernel.GeoPoint,
) (SetRiderLocationCommand, error) {
	cmd := SetRiderLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setLocation(location),
	); err != nil {
		return SetRiderLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRiderLocationCommand) Validate() error {
	return c.guard.Validate(ErrSetRiderLocationCommandIsNotConstructed)
}

// RiderID returns the rider reporting the position.
func (c SetRiderLocationCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Location returns the reported position.
func (c SetRiderLocationCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *SetRiderLocationCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *SetRiderLocationCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
