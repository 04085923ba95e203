package commands

import (
	"errors"

	"swiftdrop/internal/core/domain/model/delivery"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/guard"
)

var ErrAppendStatusImageCommandIsNotConstructed = errors.New(
	"AppendStatusImageCommand must be created via NewAppendStatusImageCommand constructor",
)

// AppendStatusImageCommand represents a request to attach one photo of
// evidence to a delivery. The status label records what the photo documents
// and is required alongside the image reference.
type AppendStatusImageCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	imageRef    string
	statusLabel delivery.Status

	guard guard.ConstructorGuard
}

// NewAppendStatusImageCommand creates a command to append an evidence photo.
func NewAppendStatusImageCommand(
	deliveryID kernel.UUID, imageRef string, statusLabel delivery.Status,
) (AppendStatusImageCommand, error) {
	cmd := AppendStatusImageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setImageRef(imageRef),
		cmd.setStatusLabel(statusLabel),
	); err != nil {
		return AppendStatusImageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendStatusImageCommand) Validate() error {
	return c.guard.Validate(ErrAppendStatusImageCommandIsNotConstructed)
}

// DeliveryID returns the delivery the photo belongs to.
func (c AppendStatusImageCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ImageRef returns the photo filename.
func (c AppendStatusImageCommand) ImageRef() string {
	return c.imageRef
}

// StatusLabel returns the label the photo documents.
func (c AppendStatusImageCommand) StatusLabel() delivery.Status {
	return c.statusLabel
}

func (c *AppendStatusImageCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AppendStatusImageCommand) setImageRef(imageRef string) error {
	if imageRef == "" {
		return delivery.ErrImageRefIsRequired
	}

	c.imageRef = imageRef
	return nil
}

func (c *AppendStatusImageCommand) setStatusLabel(statusLabel delivery.Status) error {
	if err := statusLabel.Validate(); err != nil {
		return err
	}

	c.statusLabel = statusLabel
	return nil
}
