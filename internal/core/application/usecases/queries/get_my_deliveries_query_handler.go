package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMyDeliveriesQueryHandler lists the deliveries a person sent or is
// addressed to receive.
type GetMyDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetMyDeliveriesQueryHandler creates a handler for personal delivery
// listings.
func NewGetMyDeliveriesQueryHandler(db *gorm.DB) GetMyDeliveriesQueryHandler {
	return GetMyDeliveriesQueryHandler{db: db}
}

// Handle returns the deliveries where the person is the sender or where the
// receiver phone matches, newest first. When only one identifier is given the
// other is resolved from the users table; a phone with no account still
// matches deliveries addressed to it.
func (h GetMyDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetMyDeliveriesQuery,
) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var senderID uuid.NullUUID
	phone := query.Phone()

	if query.UserID() != nil {
		senderID = uuid.NullUUID{UUID: query.UserID().Bytes(), Valid: true}
	}

	if senderID.Valid && phone == "" {
		row := h.db.WithContext(ctx).
			Raw(`SELECT phone_number FROM users WHERE id = ?`, senderID.UUID).Row()
		if err := row.Scan(&phone); err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	}
	if !senderID.Valid && phone != "" {
		var id uuid.UUID
		row := h.db.WithContext(ctx).
			Raw(`SELECT id FROM users WHERE phone_number = ?`, phone).Row()
		err := row.Scan(&id)
		if err == nil {
			senderID = uuid.NullUUID{UUID: id, Valid: true}
		} else if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	}

	switch {
	case senderID.Valid && phone != "":
		return loadDeliveryViews(ctx, h.db,
			"d.sender_id = ? OR d.receiver_phone = ?", senderID.UUID, phone)
	case senderID.Valid:
		return loadDeliveryViews(ctx, h.db, "d.sender_id = ?", senderID.UUID)
	default:
		return loadDeliveryViews(ctx, h.db, "d.receiver_phone = ?", phone)
	}
}
