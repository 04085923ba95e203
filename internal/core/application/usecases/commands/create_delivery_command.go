package commands

import (
	"errors"

	"swiftdrop/internal/core/domain/model/delivery"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrItemsAreRequired = errors.New("a delivery needs at least one item")
)

// DeliveryItemInput is one item line of a delivery creation request.
type DeliveryItemInput struct {
	Description string
	ImageRef    string
}

// CreateDeliveryCommand represents a request to create a new delivery with its
// item batch. The receiver is addressed by phone number only; whether an
// account with that number exists is resolved by the handler.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	senderID      kernel.UUID
	receiverPhone string
	productImage  string
	items         []DeliveryItemInput

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new delivery.
// Requires a valid sender, a receiver phone, and at least one item line with
// a description.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	senderID kernel.UUID,
	receiverPhone string,
	productImage string,
	items []DeliveryItemInput,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		productImage: productImage,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setSenderID(senderID),
		cmd.setReceiverPhone(receiverPhone),
		cmd.setItems(items),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier for the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// SenderID returns the originating user's identifier.
func (c CreateDeliveryCommand) SenderID() kernel.UUID {
	return c.senderID
}

// ReceiverPhone returns the destination phone number.
func (c CreateDeliveryCommand) ReceiverPhone() string {
	return c.receiverPhone
}

// ProductImage returns the optional product photo filename.
func (c CreateDeliveryCommand) ProductImage() string {
	return c.productImage
}

// Items returns the item lines in request order.
func (c CreateDeliveryCommand) Items() []DeliveryItemInput {
	return c.items
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}

	c.senderID = senderID
	return nil
}

func (c *CreateDeliveryCommand) setReceiverPhone(receiverPhone string) error {
	if receiverPhone == "" {
		return delivery.ErrReceiverPhoneIsRequired
	}

	c.receiverPhone = receiverPhone
	return nil
}

func (c *CreateDeliveryCommand) setItems(items []DeliveryItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if item.Description == "" {
			return delivery.ErrItemDescriptionIsRequired
		}
	}

	c.items = items
	return nil
}
