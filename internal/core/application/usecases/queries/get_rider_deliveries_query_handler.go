package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRiderDeliveriesQueryHandler lists the deliveries assigned to a rider.
type GetRiderDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderDeliveriesQueryHandler creates a handler for rider delivery
// listings.
func NewGetRiderDeliveriesQueryHandler(db *gorm.DB) GetRiderDeliveriesQueryHandler {
	return GetRiderDeliveriesQueryHandler{db: db}
}

// Handle returns all deliveries ever assigned to the rider, newest first.
func (h GetRiderDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetRiderDeliveriesQuery,
) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return loadDeliveryViews(ctx, h.db, "d.rider_id = ?", query.RiderID().Bytes())
}
