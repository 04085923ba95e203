package queries

import (
	"context"
	"database/sql"
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRiderLocationQueryHandler serves rider position lookups.
type GetRiderLocationQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderLocationQueryHandler creates a handler for rider position
// lookups.
func NewGetRiderLocationQueryHandler(db *gorm.DB) GetRiderLocationQueryHandler {
	return GetRiderLocationQueryHandler{db: db}
}

// Handle returns the rider's last reported position. Returns an
// ObjectNotFoundError when the rider does not exist or has never reported a
// position.
func (h GetRiderLocationQueryHandler) Handle(
	ctx context.Context,
	query GetRiderLocationQuery,
) (GetRiderLocationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRiderLocationQueryResponse{}, err
	}

	var (
		name     string
		lon, lat sql.NullFloat64
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT name, location_lon, location_lat
		FROM riders
		WHERE id = ?
	`, query.RiderID().Bytes()).Row()

	err := row.Scan(&name, &lon, &lat)
	if errors.Is(err, sql.ErrNoRows) {
		return GetRiderLocationQueryResponse{},
			errs.NewObjectNotFoundError("riderID", query.RiderID())
	}
	if err != nil {
		return GetRiderLocationQueryResponse{}, err
	}

	if !lon.Valid || !lat.Valid {
		return GetRiderLocationQueryResponse{},
			errs.NewObjectNotFoundError("riderID", query.RiderID())
	}

	location, err := kernel.NewGeoPoint(lon.Float64, lat.Float64)
	if err != nil {
		return GetRiderLocationQueryResponse{}, err
	}

	return GetRiderLocationQueryResponse{
		RiderID:  query.RiderID(),
		Name:     name,
		Location: location,
	}, nil
}
