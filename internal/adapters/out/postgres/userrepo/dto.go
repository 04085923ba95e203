// Package userrepo provides data transfer objects and mapping functions for
// user persistence. It implements the repository pattern for the user
// aggregate, converting between domain entities and database rows.
package userrepo

import (
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// The phone number carries a unique index; it is the login identifier and the
// key receivers are matched by.
type UserDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	PhoneNumber    string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	PasswordDigest string    `gorm:"type:varchar(255);not null"`
	Name           string    `gorm:"type:varchar(255);not null"`
	ImageRef       string    `gorm:"type:varchar(255)"`
	Address        string    `gorm:"type:text"`
	LocationLon    *float64  `gorm:"type:double precision"`
	LocationLat    *float64  `gorm:"type:double precision"`
	Role           string    `gorm:"type:varchar(16);not null"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	dto := UserDTO{
		ID:             aggregate.ID().Bytes(),
		PhoneNumber:    aggregate.Phone(),
		PasswordDigest: aggregate.PasswordDigest(),
		Name:           aggregate.Name(),
		ImageRef:       aggregate.ImageRef(),
		Address:        aggregate.Address(),
		Role:           string(aggregate.Role()),
	}

	if loc := aggregate.Location(); loc != nil {
		lon, lat := loc.Lon(), loc.Lat()
		dto.LocationLon = &lon
		dto.LocationLat = &lat
	}

	return dto
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(dto.Role)
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

	return user.RestoreUser(
		id,
		dto.PhoneNumber,
		dto.PasswordDigest,
		dto.Name,
		dto.ImageRef,
		dto.Address,
		location,
		role,
	)
}
