package commands

import (
	"errors"

	"swiftdrop/internal/core/domain/model/delivery"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents one status report for a delivery.
// The status label is mandatory; the rider reference is optional. A report
// with a rider is a claim or a re-confirmation and flows through the
// availability coupling; a report without one only relabels the delivery.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	status     delivery.Status
	riderID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a status report command.
// Pass a nil riderID for a report that does not involve a rider.
func NewUpdateDeliveryStatusCommand(
	deliveryID kernel.UUID, status delivery.Status, riderID *kernel.UUID,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setStatus(status),
		cmd.setRiderID(riderID),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the delivery being reported on.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Status returns the reported status label.
func (c UpdateDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}

// RiderID returns the reporting rider's identifier, nil when absent.
func (c UpdateDeliveryStatusCommand) RiderID() *kernel.UUID {
	return c.riderID
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setStatus(status delivery.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateDeliveryStatusCommand) setRiderID(riderID *kernel.UUID) error {
	if riderID != nil {
		if err := riderID.Validate(); err != nil {
			return err
		}
	}

	c.riderID = riderID
	return nil
}
