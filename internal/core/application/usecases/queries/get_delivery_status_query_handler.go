package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"swiftdrop/internal/core/domain/model/delivery"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryStatusQueryHandler serves delivery tracking lookups.
type GetDeliveryStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryStatusQueryHandler creates a handler for tracking queries.
func NewGetDeliveryStatusQueryHandler(db *gorm.DB) GetDeliveryStatusQueryHandler {
	return GetDeliveryStatusQueryHandler{db: db}
}

// Handle returns the current status, assigned rider, and evidence log of the
// delivery. Returns an ObjectNotFoundError when the delivery does not exist.
func (h GetDeliveryStatusQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryStatusQuery,
) (GetDeliveryStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryStatusQueryResponse{}, err
	}

	var (
		status             string
		updatedAt          time.Time
		riderID            uuid.NullUUID
		riderName          sql.NullString
		riderPhone         sql.NullString
		riderVehicle       sql.NullString
		riderLon, riderLat sql.NullFloat64
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			d.status, d.updated_at,
			r.id, r.name, r.phone_number, r.vehicle_registration, r.location_lon, r.location_lat
		FROM deliveries d
		LEFT JOIN riders r ON r.id = d.rider_id
		WHERE d.id = ?
	`, query.DeliveryID().Bytes()).Row()

	err := row.Scan(
		&status, &updatedAt,
		&riderID, &riderName, &riderPhone, &riderVehicle, &riderLon, &riderLat,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDeliveryStatusQueryResponse{},
			errs.NewObjectNotFoundError("deliveryID", query.DeliveryID())
	}
	if err != nil {
		return GetDeliveryStatusQueryResponse{}, err
	}

	response := GetDeliveryStatusQueryResponse{
		DeliveryID:   query.DeliveryID(),
		Status:       delivery.Status(status),
		StatusImages: make([]StatusImageView, 0),
		UpdatedAt:    updatedAt,
	}

	if riderID.Valid {
		id, idErr := kernel.UUIDFromBytes(riderID.UUID[:])
		if idErr != nil {
			return GetDeliveryStatusQueryResponse{}, idErr
		}
		location, locErr := pointFromNullable(riderLon, riderLat)
		if locErr != nil {
			return GetDeliveryStatusQueryResponse{}, locErr
		}
		response.Rider = &RiderView{
			ID:                  id,
			Name:                riderName.String,
			Phone:               riderPhone.String,
			VehicleRegistration: riderVehicle.String,
			Location:            location,
		}
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, image_ref, status_label, uploaded_at
		FROM delivery_status_images
		WHERE delivery_id = ?
		ORDER BY uploaded_at
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return GetDeliveryStatusQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var imageID uuid.UUID
		var image StatusImageView

		err = rows.Scan(&imageID, &image.ImageRef, &image.StatusLabel, &image.UploadedAt)
		if err != nil {
			return GetDeliveryStatusQueryResponse{}, err
		}
		if image.ID, err = kernel.UUIDFromBytes(imageID[:]); err != nil {
			return GetDeliveryStatusQueryResponse{}, err
		}
		response.StatusImages = append(response.StatusImages, image)
	}
	if err = rows.Err(); err != nil {
		return GetDeliveryStatusQueryResponse{}, err
	}

	return response, nil
}
