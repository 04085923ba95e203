package queries

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/guard"
)

var ErrGetRiderLocationQueryIsNotConstructed = errors.New(
	"GetRiderLocationQuery must be created via NewGetRiderLocationQuery constructor",
)

// GetRiderLocationQuery retrieves the last reported position of a rider so a
// sender or receiver can follow the delivery on a map.
type GetRiderLocationQuery struct {
	guard guard.ConstructorGuard

	riderID kernel.UUID
}

// NewGetRiderLocationQuery creates the query for the given rider.
func NewGetRiderLocationQuery(riderID kernel.UUID) (GetRiderLocationQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetRiderLocationQuery{}, err
	}

	return GetRiderLocationQuery{
		guard:   guard.NewConstructorGuard(),
		riderID: riderID,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRiderLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderLocationQueryIsNotConstructed)
}

func (q GetRiderLocationQuery) RiderID() kernel.UUID {
	return q.riderID
}

// GetRiderLocationQueryResponse is the rider's last reported position.
type GetRiderLocationQueryResponse struct {
	RiderID  kernel.UUID
	Name     string
	Location kernel.GeoPoint
}
