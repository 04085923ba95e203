package commands

import (
	"context"

	"swiftdrop/internal/core/domain/model/rider"

	"golang.org/x/crypto/bcrypt"
)

// RegisterRiderCommandHandler handles rider account registration.
// New riders start available.
type RegisterRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewRegisterRiderCommandHandler creates a handler for rider registration.
func NewRegisterRiderCommandHandler(uowFactory RiderUoWFactory) RegisterRiderCommandHandler {
	return RegisterRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *RegisterRiderCommandHandler) Handle(ctx context.Context, cmd RegisterRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	aggregate, err := rider.NewRider(
		cmd.RiderID(), cmd.Phone(), string(digest), cmd.Name(), cmd.VehicleRegistration())
	if err != nil {
		return err
	}

	aggregate.SetImageRef(cmd.ImageRef())
	if cmd.Location() != nil {
		if err = aggregate.MoveTo(*cmd.Location()); err != nil {
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

	if err = uow.RiderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
