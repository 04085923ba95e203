package queries

import (
	"errors"

	"swiftdrop/internal/pkg/guard"
)

var ErrGetAvailableDeliveriesQueryIsNotConstructed = errors.New(
	"GetAvailableDeliveriesQuery must be created via NewGetAvailableDeliveriesQuery constructor",
)

// GetAvailableDeliveriesQuery retrieves the deliveries still waiting for a
// rider. Riders poll this feed to pick up work.
type GetAvailableDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDeliveriesQuery creates the parameterless feed query.
func NewGetAvailableDeliveriesQuery() GetAvailableDeliveriesQuery {
	return GetAvailableDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDeliveriesQueryIsNotConstructed)
}
