// Package ports defines repository interfaces for the delivery domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Users are customers of the platform; the phone number is their unique
// login identifier.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	// Returns errs.ErrObjectAlreadyExists when the phone number is taken.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByPhone retrieves a user aggregate by its phone number.
	// Returns errs.ErrObjectNotFound when no account carries the phone.
	GetByPhone(ctx context.Context, phone string) (*user.User, error)
}
