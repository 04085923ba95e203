// Package riderrepo provides data transfer objects and mapping functions for
// rider persistence. It implements the repository pattern for the rider
// aggregate, converting between domain entities and database rows.
package riderrepo

import (
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for persisting rider aggregates.
// The availability flag is the row the lifecycle engine locks and flips when
// delivery statuses change.
type RiderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	PhoneNumber         string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	PasswordDigest      string    `gorm:"type:varchar(255);not null"`
	Name                string    `gorm:"type:varchar(255);not null"`
	ImageRef            string    `gorm:"type:varchar(255)"`
	VehicleRegistration string    `gorm:"type:varchar(64);not null"`
	LocationLon         *float64  `gorm:"type:double precision"`
	LocationLat         *float64  `gorm:"type:double precision"`
	Available           bool      `gorm:"type:boolean;not null;default:true"`
}

// TableName overrides GORM's default naming to use "riders".
func (RiderDTO) TableName() string {
	return "riders"
}

func fromDomain(aggregate *rider.Rider) RiderDTO {
	dto := RiderDTO{
		ID:                  aggregate.ID().Bytes(),
		PhoneNumber:         aggregate.Phone(),
		PasswordDigest:      aggregate.PasswordDigest(),
		Name:                aggregate.Name(),
		ImageRef:            aggregate.ImageRef(),
		VehicleRegistration: aggregate.VehicleRegistration(),
		Available:           aggregate.Available(),
	}

	if loc := aggregate.Location(); loc != nil {
		lon, lat := loc.Lon(), loc.Lat()
		dto.LocationLon = &lon
		dto.LocationLat = &lat
	}

	return dto
}

func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.LocationLon != nil && dto.LocationLat != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.LocationLon, *dto.LocationLat)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	return rider.RestoreRider(
		id,
		dto.PhoneNumber,
		dto.PasswordDigest,
		dto.Name,
		dto.VehicleRegistration,
		dto.ImageRef,
		location,
		dto.Available,
	)
}
