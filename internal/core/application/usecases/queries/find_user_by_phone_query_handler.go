package queries

import (
	"context"
	"database/sql"
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FindUserByPhoneQueryHandler resolves user profiles by phone number.
type FindUserByPhoneQueryHandler struct {
	db *gorm.DB
}

// NewFindUserByPhoneQueryHandler creates a handler for phone lookups.
func NewFindUserByPhoneQueryHandler(db *gorm.DB) FindUserByPhoneQueryHandler {
	return FindUserByPhoneQueryHandler{db: db}
}

// Handle returns the profile of the user with the given phone number, or an
// ObjectNotFoundError when no account matches.
func (h FindUserByPhoneQueryHandler) Handle(
	ctx context.Context,
	query FindUserByPhoneQuery,
) (FindUserByPhoneQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return FindUserByPhoneQueryResponse{}, err
	}

	var (
		id       uuid.UUID
		name     string
		imageRef string
		address  string
		lon, lat sql.NullFloat64
		role     string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, image_ref, address, location_lon, location_lat, role
		FROM users
		WHERE phone_number = ?
	`, query.Phone()).Row()

	err := row.Scan(&id, &name, &imageRef, &address, &lon, &lat, &role)
	if errors.Is(err, sql.ErrNoRows) {
		return FindUserByPhoneQueryResponse{},
			errs.NewObjectNotFoundError("phone", query.Phone())
	}
	if err != nil {
		return FindUserByPhoneQueryResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return FindUserByPhoneQueryResponse{}, err
	}
	location, err := pointFromNullable(lon, lat)
	if err != nil {
		return FindUserByPhoneQueryResponse{}, err
	}

	return FindUserByPhoneQueryResponse{
		ID:       userID,
		Name:     name,
		Phone:    query.Phone(),
		ImageRef: imageRef,
		Address:  address,
		Location: location,
		Role:     role,
	}, nil
}
