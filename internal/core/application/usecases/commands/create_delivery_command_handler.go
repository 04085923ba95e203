package commands

import (
	"context"

	"swiftdrop/internal/core/domain/model/delivery"
)

// CreateDeliveryCommandHandler handles delivery creation. The delivery row and
// its entire item batch are written in one transaction; a failure on any line
// leaves nothing behind.
//
// Pickup and dropoff are derived from the stored accounts: the pickup location
// mirrors the receiver's address and the dropoff the sender's. Established
// clients render around this wire contract, so it is kept as is.
type CreateDeliveryCommandHandler struct {
	uowFactory UserDeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(uowFactory UserDeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery creation command. Both the sender and the
// account behind the receiver phone must already exist.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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
	sender, err := userRepo.Get(ctx, cmd.SenderID())
	if err != nil {
		return err
	}

	aggregate, err := delivery.NewDelivery(cmd.DeliveryID(), sender.ID(), cmd.ReceiverPhone())
	if err != nil {
		return err
	}
	aggregate.SetProductImage(cmd.ProductImage())

	receiver, err := userRepo.GetByPhone(ctx, cmd.ReceiverPhone())
	if err != nil {
		return err
	}
	if err = aggregate.SetPickup(receiver.Address(), receiver.Location()); err != nil {
		return err
	}

	if err = aggregate.SetDropoff(sender.Address(), sender.Location()); err != nil {
		return err
	}

	for _, item := range cmd.Items() {
		if _, err = aggregate.AddItem(item.Description, item.ImageRef); err != nil {
			return err
		}
	}

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
