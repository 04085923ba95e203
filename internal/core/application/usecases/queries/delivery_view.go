// Package queries contains read-side operations of the CQRS split. Handlers
// run raw SQL against the database and return view structs assembled for the
// transport layer; they never load or mutate domain aggregates.
package queries

import (
	"context"
	"database/sql"
	"time"

	"swiftdrop/internal/core/domain/model/delivery"
	"swiftdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartyView is the sender or receiver account as rendered in a delivery view.
type PartyView struct {
	ID       kernel.UUID
	Name     string
	Phone    string
	ImageRef string
	Address  string
	Location *kernel.GeoPoint
	Role     string
}

// RiderView is the assigned rider as rendered in a delivery view.
type RiderView struct {
	ID                  kernel.UUID
	Name                string
	Phone               string
	VehicleRegistration string
	Location            *kernel.GeoPoint
}

// ItemView is one item line of a delivery view.
type ItemView struct {
	ID          kernel.UUID
	Description string
	ImageRef    string
}

// StatusImageView is one evidence log entry of a delivery view.
type StatusImageView struct {
	ID          kernel.UUID
	ImageRef    string
	StatusLabel string
	UploadedAt  time.Time
}

// DeliveryView is the full read model of one delivery: the delivery row joined
// with its sender, the receiver account matched by phone at read time (nil
// when no such account exists), the assigned rider (nil while unclaimed), the
// item lines, and the evidence log.
type DeliveryView struct {
	ID           kernel.UUID
	Status       delivery.Status
	ProductImage string

	PickupAddress  string
	PickupPoint    *kernel.GeoPoint
	DropoffAddress string
	DropoffPoint   *kernel.GeoPoint

	ReceiverPhone string
	Sender        PartyView
	Receiver      *PartyView
	Rider         *RiderView

	Items        []ItemView
	StatusImages []StatusImageView

	CreatedAt time.Time
	UpdatedAt time.Time
}

const deliveryViewSelect = `
	SELECT
		d.id, d.status, d.product_image, d.receiver_phone,
		d.pickup_address, d.pickup_lon, d.pickup_lat,
		d.dropoff_address, d.dropoff_lon, d.dropoff_lat,
		d.created_at, d.updated_at,
		s.id, s.name, s.phone_number, s.image_ref, s.address, s.location_lon, s.location_lat, s.role,
		rcv.id, rcv.name, rcv.image_ref, rcv.address, rcv.location_lon, rcv.location_lat, rcv.role,
		r.id, r.name, r.phone_number, r.vehicle_registration, r.location_lon, r.location_lat
	FROM deliveries d
	JOIN users s ON s.id = d.sender_id
	LEFT JOIN users rcv ON rcv.phone_number = d.receiver_phone
	LEFT JOIN riders r ON r.id = d.rider_id
`

// loadDeliveryViews runs the delivery view query with the given WHERE clause
// and loads the child collections for every matched delivery. Results are
// ordered newest first.
func loadDeliveryViews(
	ctx context.Context, db *gorm.DB, where string, args ...any,
) ([]DeliveryView, error) {
	views := make([]DeliveryView, 0)

	rows, err := db.WithContext(ctx).
		Raw(deliveryViewSelect+" WHERE "+where+" ORDER BY d.created_at DESC", args...).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanDeliveryView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachChildren(ctx, db, views); err != nil {
		return nil, err
	}

	return views, nil
}

func scanDeliveryView(rows *sql.Rows) (DeliveryView, error) {
	var (
		id                         uuid.UUID
		status                     string
		productImage               string
		receiverPhone              string
		pickupAddress              string
		pickupLon, pickupLat       sql.NullFloat64
		dropoffAddress             string
		dropoffLon, dropoffLat     sql.NullFloat64
		createdAt, updatedAt       time.Time
		senderID                   uuid.UUID
		senderName, senderPhone    string
		senderImage, senderAddress string
		senderLon, senderLat       sql.NullFloat64
		senderRole                 string

		receiverID                     uuid.NullUUID
		receiverName                   sql.NullString
		receiverImage, receiverAddress sql.NullString
		receiverLon, receiverLat       sql.NullFloat64
		receiverRole                   sql.NullString

		riderID            uuid.NullUUID
		riderName          sql.NullString
		riderPhone         sql.NullString
		riderVehicle       sql.NullString
		riderLon, riderLat sql.NullFloat64
	)

	err := rows.Scan(
		&id, &status, &productImage, &receiverPhone,
		&pickupAddress, &pickupLon, &pickupLat,
		&dropoffAddress, &dropoffLon, &dropoffLat,
		&createdAt, &updatedAt,
		&senderID, &senderName, &senderPhone, &senderImage, &senderAddress,
		&senderLon, &senderLat, &senderRole,
		&receiverID, &receiverName, &receiverImage, &receiverAddress,
		&receiverLon, &receiverLat, &receiverRole,
		&riderID, &riderName, &riderPhone, &riderVehicle, &riderLon, &riderLat,
	)
	if err != nil {
		return DeliveryView{}, err
	}

	deliveryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return DeliveryView{}, err
	}
	senderUUID, err := kernel.UUIDFromBytes(senderID[:])
	if err != nil {
		return DeliveryView{}, err
	}

	pickupPoint, err := pointFromNullable(pickupLon, pickupLat)
	if err != nil {
		return DeliveryView{}, err
	}
	dropoffPoint, err := pointFromNullable(dropoffLon, dropoffLat)
	if err != nil {
		return DeliveryView{}, err
	}
	senderPoint, err := pointFromNullable(senderLon, senderLat)
	if err != nil {
		return DeliveryView{}, err
	}

	view := DeliveryView{
		ID:             deliveryID,
		Status:         delivery.Status(status),
		ProductImage:   productImage,
		PickupAddress:  pickupAddress,
		PickupPoint:    pickupPoint,
		DropoffAddress: dropoffAddress,
		DropoffPoint:   dropoffPoint,
		ReceiverPhone:  receiverPhone,
		Sender: PartyView{
			ID:       senderUUID,
			Name:     senderName,
			Phone:    senderPhone,
			ImageRef: senderImage,
			Address:  senderAddress,
			Location: senderPoint,
			Role:     senderRole,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	if receiverID.Valid {
		receiverUUID, idErr := kernel.UUIDFromBytes(receiverID.UUID[:])
		if idErr != nil {
			return DeliveryView{}, idErr
		}
		receiverPoint, locErr := pointFromNullable(receiverLon, receiverLat)
		if locErr != nil {
			return DeliveryView{}, locErr
		}
		view.Receiver = &PartyView{
			ID:       receiverUUID,
			Name:     receiverName.String,
			Phone:    receiverPhone,
			ImageRef: receiverImage.String,
			Address:  receiverAddress.String,
			Location: receiverPoint,
			Role:     receiverRole.String,
		}
	}

	if riderID.Valid {
		riderUUID, idErr := kernel.UUIDFromBytes(riderID.UUID[:])
		if idErr != nil {
			return DeliveryView{}, idErr
		}
		riderPoint, locErr := pointFromNullable(riderLon, riderLat)
		if locErr != nil {
			return DeliveryView{}, locErr
		}
		view.Rider = &RiderView{
			ID:                  riderUUID,
			Name:                riderName.String,
			Phone:               riderPhone.String,
			VehicleRegistration: riderVehicle.String,
			Location:            riderPoint,
		}
	}

	return view, nil
}

// attachChildren loads item lines and status images for the matched
// deliveries in two batched queries and distributes them onto the views.
func attachChildren(ctx context.Context, db *gorm.DB, views []DeliveryView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(views))
	index := make(map[uuid.UUID]int, len(views))
	for i, view := range views {
		raw := view.ID.Bytes()
		ids = append(ids, raw)
		index[raw] = i
	}

	itemRows, err := db.WithContext(ctx).Raw(`
		SELECT delivery_id, id, description, image_ref
		FROM delivery_items
		WHERE delivery_id IN ?
		ORDER BY position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var deliveryID, itemID uuid.UUID
		var item ItemView

		if err = itemRows.Scan(&deliveryID, &itemID, &item.Description, &item.ImageRef); err != nil {
			return err
		}
		if item.ID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return err
		}

		i := index[deliveryID]
		views[i].Items = append(views[i].Items, item)
	}
	if err = itemRows.Err(); err != nil {
		return err
	}

	imageRows, err := db.WithContext(ctx).Raw(`
		SELECT delivery_id, id, image_ref, status_label, uploaded_at
		FROM delivery_status_images
		WHERE delivery_id IN ?
		ORDER BY uploaded_at
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer imageRows.Close()

	for imageRows.Next() {
		var deliveryID, imageID uuid.UUID
		var image StatusImageView

		err = imageRows.Scan(
			&deliveryID, &imageID, &image.ImageRef, &image.StatusLabel, &image.UploadedAt)
		if err != nil {
			return err
		}
		if image.ID, err = kernel.UUIDFromBytes(imageID[:]); err != nil {
			return err
		}

		i := index[deliveryID]
		views[i].StatusImages = append(views[i].StatusImages, image)
	}

	return imageRows.Err()
}

func pointFromNullable(lon, lat sql.NullFloat64) (*kernel.GeoPoint, error) {
	if !lon.Valid || !lat.Valid {
		return nil, nil
	}
	point, err := kernel.NewGeoPoint(lon.Float64, lat.Float64)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
