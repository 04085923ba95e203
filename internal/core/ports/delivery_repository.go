package ports

import (
	"context"

	"swiftdrop/internal/core/domain/model/delivery"
	"swiftdrop/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// A delivery is stored together with its item lines; status images are
// append-only and written through AddStatusImage.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate together with its item lines.
	// The delivery and all lines are written in the same transaction.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// Item lines are immutable after creation and are not rewritten.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier, including
	// item lines and the status image log.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// AddStatusImage appends one evidence entry to the delivery's image log.
	AddStatusImage(ctx context.Context, deliveryID kernel.UUID, entry *delivery.StatusImage) error

	// GetAllActiveAssigned retrieves all deliveries that have a rider and have
	// not reached the terminal delivered state. Used by the availability
	// reconciliation job.
	GetAllActiveAssigned(ctx context.Context) ([]*delivery.Delivery, error)
}
