package queries

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

var ErrFindUserByPhoneQueryIsNotConstructed = errors.New(
	"FindUserByPhoneQuery must be created via NewFindUserByPhoneQuery constructor",
)

// FindUserByPhoneQuery looks up a user account by its phone number. Senders
// use it to check whether a receiver already has an account before creating a
// delivery.
type FindUserByPhoneQuery struct {
	guard guard.ConstructorGuard

	phone string
}

// NewFindUserByPhoneQuery creates a lookup query for the given phone number.
func NewFindUserByPhoneQuery(phone string) (FindUserByPhoneQuery, error) {
	if phone == "" {
		return FindUserByPhoneQuery{}, errs.NewValueIsRequiredError("phone")
	}

	return FindUserByPhoneQuery{
		guard: guard.NewConstructorGuard(),
		phone: phone,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindUserByPhoneQuery) Validate() error {
	return q.guard.Validate(ErrFindUserByPhoneQueryIsNotConstructed)
}

func (q FindUserByPhoneQuery) Phone() string {
	return q.phone
}

// FindUserByPhoneQueryResponse is the matched user's public profile.
type FindUserByPhoneQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Phone    string
	ImageRef string
	Address  string
	Location *kernel.GeoPoint
	Role     string
}
