package commands

import (
	"context"
	"errors"
)

// ErrRiderIsBusy is returned when a busy rider is named in a non-terminal
// status report. The transport layer maps it to a client error.
var ErrRiderIsBusy = errors.New("rider already has a delivery in progress")

// UpdateDeliveryStatusCommandHandler is the delivery lifecycle engine.
//
// Every status report flows through here. When a rider is named, the rider
// row is locked for the rest of the transaction before its availability is
// read, so two simultaneous claims of the same rider serialize: the first
// commit wins, the second reloads the rider as busy and is rejected. The
// delivery status change and the availability flip always commit together.
//
// Availability is coupled to the reported status, not to a transition graph:
// any non-terminal report marks the named rider busy, the terminal delivered
// report frees them. A report naming no rider leaves availability untouched
// even when the delivery already has one assigned.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory RiderDeliveryUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates the lifecycle engine handler.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory RiderDeliveryUoWFactory,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one status report.
func (h *UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateDeliveryStatusCommand,
) error {
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

	deliveryRepo := uow.DeliveryRepository()
	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if cmd.RiderID() != nil {
		riderRepo := uow.RiderRepository()
		reporter, riderErr := riderRepo.GetForUpdate(ctx, *cmd.RiderID())
		if riderErr != nil {
			return riderErr
		}

		// A busy rider can still push a delivered report through; anything
		// else is rejected regardless of which delivery made them busy.
		if !reporter.Available() && !cmd.Status().IsDelivered() {
			return ErrRiderIsBusy
		}

		if err = aggregate.AssignRider(reporter.ID()); err != nil {
			return err
		}

		if cmd.Status().IsDelivered() {
			reporter.MarkFree()
		} else {
			reporter.MarkBusy()
		}

		if err = riderRepo.Update(ctx, reporter); err != nil {
			return err
		}
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
