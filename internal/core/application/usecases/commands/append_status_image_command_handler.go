package commands

import (
	"context"

	"swiftdrop/internal/core/domain/model/kernel"
)

// AppendStatusImageCommandHandler attaches evidence photos to deliveries.
// The image log is append-only and deliberately decoupled from the lifecycle
// engine: uploading a photo never changes the delivery's status.
type AppendStatusImageCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAppendStatusImageCommandHandler creates a handler for evidence uploads.
func NewAppendStatusImageCommandHandler(uowFactory DeliveryUoWFactory) AppendStatusImageCommandHandler {
	return AppendStatusImageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the upload command and returns the new entry's identifier.
func (h *AppendStatusImageCommandHandler) Handle(
	ctx context.Context, cmd AppendStatusImageCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return kernel.UUID{}, err
	}

	entry, err := aggregate.AppendStatusImage(cmd.ImageRef(), cmd.StatusLabel())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = deliveryRepo.AddStatusImage(ctx, aggregate.ID(), entry); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return entry.ID(), nil
}
