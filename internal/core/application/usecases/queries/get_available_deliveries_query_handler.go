package queries

import (
	"context"

	"swiftdrop/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetAvailableDeliveriesQueryHandler serves the rider work feed: deliveries
// that are still awaiting a rider.
type GetAvailableDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDeliveriesQueryHandler creates a handler for the work feed.
func NewGetAvailableDeliveriesQueryHandler(db *gorm.DB) GetAvailableDeliveriesQueryHandler {
	return GetAvailableDeliveriesQueryHandler{db: db}
}

// Handle returns unassigned deliveries in AWAITING_RIDER status, newest
// first.
func (h GetAvailableDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDeliveriesQuery,
) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return loadDeliveryViews(ctx, h.db,
		"d.rider_id IS NULL AND d.status = ?", delivery.StatusAwaitingRider.String())
}
