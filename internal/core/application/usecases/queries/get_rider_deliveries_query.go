package queries

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/guard"
)

var ErrGetRiderDeliveriesQueryIsNotConstructed = errors.New(
	"GetRiderDeliveriesQuery must be created via NewGetRiderDeliveriesQuery constructor",
)

// GetRiderDeliveriesQuery retrieves every delivery assigned to one rider,
// current and past.
type GetRiderDeliveriesQuery struct {
	guard guard.ConstructorGuard

	riderID kernel.UUID
}

// NewGetRiderDeliveriesQuery creates the query for the given rider.
func NewGetRiderDeliveriesQuery(riderID kernel.UUID) (GetRiderDeliveriesQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetRiderDeliveriesQuery{}, err
	}

	return GetRiderDeliveriesQuery{
		guard:   guard.NewConstructorGuard(),
		riderID: riderID,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRiderDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderDeliveriesQueryIsNotConstructed)
}

func (q GetRiderDeliveriesQuery) RiderID() kernel.UUID {
	return q.riderID
}
