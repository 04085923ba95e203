package queries

import (
	"errors"
	"time"

	"swiftdrop/internal/core/domain/model/delivery"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/guard"
)

var ErrGetDeliveryStatusQueryIsNotConstructed = errors.New(
	"GetDeliveryStatusQuery must be created via NewGetDeliveryStatusQuery constructor",
)

// GetDeliveryStatusQuery retrieves the tracking state of one delivery: its
// current status, the assigned rider, and the evidence log.
type GetDeliveryStatusQuery struct {
	guard guard.ConstructorGuard

	deliveryID kernel.UUID
}

// NewGetDeliveryStatusQuery creates the tracking query for the given
// delivery.
func NewGetDeliveryStatusQuery(deliveryID kernel.UUID) (GetDeliveryStatusQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryStatusQuery{}, err
	}

	return GetDeliveryStatusQuery{
		guard:      guard.NewConstructorGuard(),
		deliveryID: deliveryID,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryStatusQueryIsNotConstructed)
}

func (q GetDeliveryStatusQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// GetDeliveryStatusQueryResponse is the tracking state of a delivery.
// Rider is nil while the delivery is unclaimed.
type GetDeliveryStatusQueryResponse struct {
	DeliveryID   kernel.UUID
	Status       delivery.Status
	Rider        *RiderView
	StatusImages []StatusImageView
	UpdatedAt    time.Time
}
