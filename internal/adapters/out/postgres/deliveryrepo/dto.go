// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. A delivery row owns its item lines and its
// append-only status image log; lines are written once with the delivery,
// images are appended one at a time.
package deliveryrepo

import (
	"time"

	"swiftdrop/internal/core/domain/model/delivery"
	"swiftdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. The receiver is referenced by phone number, not by foreign key;
// receiver resolution happens at read time in the query layer. RiderID stays
// NULL until the first claim.
type DeliveryDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceiverPhone string    `gorm:"type:varchar(32);not null;index"`
	Status        string    `gorm:"type:varchar(64);not null"`
	ProductImage  string    `gorm:"type:varchar(255)"`

	PickupAddress  string   `gorm:"type:text"`
	PickupLon      *float64 `gorm:"type:double precision"`
	PickupLat      *float64 `gorm:"type:double precision"`
	DropoffAddress string   `gorm:"type:text"`
	DropoffLon     *float64 `gorm:"type:double precision"`
	DropoffLat     *float64 `gorm:"type:double precision"`

	RiderID *uuid.UUID `gorm:"type:uuid;index"`

	Items        []ItemDTO        `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
	StatusImages []StatusImageDTO `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// ItemDTO represents one item line of a multi-item delivery.
// Lines are immutable after the creating transaction.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:text;not null"`
	ImageRef    string    `gorm:"type:varchar(255)"`
	Position    int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "delivery_items".
func (ItemDTO) TableName() string {
	return "delivery_items"
}

// StatusImageDTO represents one entry of the append-only evidence log.
type StatusImageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageRef    string    `gorm:"type:varchar(255);not null"`
	StatusLabel string    `gorm:"type:varchar(64);not null"`
	UploadedAt  time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "delivery_status_images".
func (StatusImageDTO) TableName() string {
	return "delivery_status_images"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	deliveryID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:          item.ID().Bytes(),
			DeliveryID:  deliveryID,
			Description: item.Description(),
			ImageRef:    item.ImageRef(),
			Position:    i,
		})
	}

	images := make([]StatusImageDTO, 0, len(aggregate.StatusImages()))
	for _, entry := range aggregate.StatusImages() {
		images = append(images, statusImageFromDomain(deliveryID, entry))
	}

	var riderID *uuid.UUID
	if aggregate.Rider() != nil {
		raw := aggregate.Rider().Bytes()
		riderID = &raw
	}

	dto := DeliveryDTO{
		ID:             deliveryID,
		SenderID:       aggregate.SenderID().Bytes(),
		ReceiverPhone:  aggregate.ReceiverPhone(),
		Status:         aggregate.Status().String(),
		ProductImage:   aggregate.ProductImage(),
		PickupAddress:  aggregate.PickupAddress(),
		DropoffAddress: aggregate.DropoffAddress(),
		RiderID:        riderID,
		Items:          items,
		StatusImages:   images,
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}

	if p := aggregate.PickupPoint(); p != nil {
		lon, lat := p.Lon(), p.Lat()
		dto.PickupLon = &lon
		dto.PickupLat = &lat
	}
	if p := aggregate.DropoffPoint(); p != nil {
		lon, lat := p.Lon(), p.Lat()
		dto.DropoffLon = &lon
		dto.DropoffLat = &lat
	}

	return dto
}

func statusImageFromDomain(deliveryID uuid.UUID, entry *delivery.StatusImage) StatusImageDTO {
	return StatusImageDTO{
		ID:          entry.ID().Bytes(),
		DeliveryID:  deliveryID,
		ImageRef:    entry.ImageRef(),
		StatusLabel: entry.StatusLabel().String(),
		UploadedAt:  entry.UploadedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	pickupPoint, err := pointFromColumns(dto.PickupLon, dto.PickupLat)
	if err != nil {
		return nil, err
	}
	dropoffPoint, err := pointFromColumns(dto.DropoffLon, dto.DropoffLat)
	if err != nil {
		return nil, err
	}

	items := make([]*delivery.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	images := make([]*delivery.StatusImage, 0, len(dto.StatusImages))
	for _, imageDto := range dto.StatusImages {
		entry, imageErr := statusImageToDomain(imageDto)
		if imageErr != nil {
			return nil, imageErr
		}
		images = append(images, entry)
	}

	return delivery.RestoreDelivery(
		id, senderID, dto.ReceiverPhone,
		delivery.Status(dto.Status), dto.ProductImage,
		dto.PickupAddress, pickupPoint,
		dto.DropoffAddress, dropoffPoint,
		riderID,
		items,
		images,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func itemToDomain(dto ItemDTO) (*delivery.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return delivery.RestoreItem(id, dto.Description, dto.ImageRef)
}

func statusImageToDomain(dto StatusImageDTO) (*delivery.StatusImage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return delivery.RestoreStatusImage(id, dto.ImageRef, delivery.Status(dto.StatusLabel), dto.UploadedAt)
}

func pointFromColumns(lon, lat *float64) (*kernel.GeoPoint, error) {
	if lon == nil || lat == nil {
		return nil, nil
	}
	point, err := kernel.NewGeoPoint(*lon, *lat)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
