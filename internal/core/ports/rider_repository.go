package ports

import (
	"context"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates.
type RiderRepository interface {
	// Add persists a new rider aggregate to storage.
	// Returns errs.ErrObjectAlreadyExists when the phone number is taken.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update persists changes to an existing rider aggregate.
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetForUpdate retrieves a rider aggregate by identifier while holding a
	// row-level write lock for the remainder of the current transaction.
	// Status updates use it so that concurrent claims of the same rider
	// serialize on the rider row instead of racing on stale availability.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetByPhone retrieves a rider aggregate by its phone number.
	// Returns errs.ErrObjectNotFound when no account carries the phone.
	GetByPhone(ctx context.Context, phone string) (*rider.Rider, error)

	// GetAllBusy retrieves all riders currently flagged as unavailable.
	// Used by the availability reconciliation job to find riders whose
	// deliveries have all finished.
	GetAllBusy(ctx context.Context) ([]*rider.Rider, error)
}
