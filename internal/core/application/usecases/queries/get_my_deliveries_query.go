package queries

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

var ErrGetMyDeliveriesQueryIsNotConstructed = errors.New(
	"GetMyDeliveriesQuery must be created via NewGetMyDeliveriesQuery constructor",
)

// GetMyDeliveriesQuery retrieves the deliveries a person is part of, either
// as the sender or as the receiver. The caller identifies the person by user
// ID, phone number, or both; at least one is required. The missing identifier
// is resolved from the account table so that deliveries addressed to the
// person's phone before they registered still show up.
type GetMyDeliveriesQuery struct {
	guard guard.ConstructorGuard

	userID *kernel.UUID
	phone  string
}

// NewGetMyDeliveriesQuery creates the query. userID may be nil and phone may
// be empty, but not both.
func NewGetMyDeliveriesQuery(userID *kernel.UUID, phone string) (GetMyDeliveriesQuery, error) {
	if userID == nil && phone == "" {
		return GetMyDeliveriesQuery{}, errs.NewValueIsRequiredError("userID or phone")
	}
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return GetMyDeliveriesQuery{}, err
		}
	}

	return GetMyDeliveriesQuery{
		guard:  guard.NewConstructorGuard(),
		userID: userID,
		phone:  phone,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetMyDeliveriesQueryIsNotConstructed)
}

func (q GetMyDeliveriesQuery) UserID() *kernel.UUID {
	return q.userID
}

func (q GetMyDeliveriesQuery) Phone() string {
	return q.phone
}
