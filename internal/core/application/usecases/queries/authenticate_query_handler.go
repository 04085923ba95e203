package queries

import (
	"context"
	"database/sql"
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthenticateQueryHandler verifies credentials against the users or riders
// table. The stored bcrypt digest is compared in constant time; callers should
// collapse ErrAccountNotFound and ErrInvalidCredentials into one message when
// account enumeration is a concern.
type AuthenticateQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateQueryHandler creates a handler for authentication queries.
func NewAuthenticateQueryHandler(db *gorm.DB) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{db: db}
}

// Handle looks up the account by phone number and checks the password against
// the stored digest. Returns ErrAccountNotFound when no account matches and
// ErrInvalidCredentials when the password is wrong.
func (h AuthenticateQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateQuery,
) (AuthenticateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateQueryResponse{}, err
	}

	var (
		id       uuid.UUID
		name     string
		imageRef string
		digest   string
		extra    string
	)

	statement := `
		SELECT id, name, image_ref, password_digest, role
		FROM users
		WHERE phone_number = ?
	`
	if query.Kind() == AccountKindRider {
		statement = `
			SELECT id, name, image_ref, password_digest, vehicle_registration
			FROM riders
			WHERE phone_number = ?
		`
	}

	row := h.db.WithContext(ctx).Raw(statement, query.Phone()).Row()
	err := row.Scan(&id, &name, &imageRef, &digest, &extra)
	if errors.Is(err, sql.ErrNoRows) {
		return AuthenticateQueryResponse{}, ErrAccountNotFound
	}
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(digest), []byte(query.Password())); err != nil {
		return AuthenticateQueryResponse{}, ErrInvalidCredentials
	}

	accountID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}

	response := AuthenticateQueryResponse{
		ID:       accountID,
		Kind:     query.Kind(),
		Name:     name,
		Phone:    query.Phone(),
		ImageRef: imageRef,
	}
	if query.Kind() == AccountKindRider {
		response.VehicleRegistration = extra
	} else {
		response.Role = extra
	}

	return response, nil
}
