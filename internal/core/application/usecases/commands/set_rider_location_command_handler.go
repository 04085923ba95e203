package commands

import (
	"context"
)

// SetRiderLocationCommandHandler persists rider position reports.
type SetRiderLocationCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewSetRiderLocationCommandHandler creates a handler for position reports.
func NewSetRiderLocationCommandHandler(uowFactory RiderUoWFactory) SetRiderLocationCommandHandler {
	return SetRiderLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the position report.
func (h *SetRiderLocationCommandHandler) Handle(ctx context.Context, cmd SetRiderLocationCommand) error {
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

	riderRepo := uow.RiderRepository()
	aggregate, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	if err = aggregate.MoveTo(cmd.Location()); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
