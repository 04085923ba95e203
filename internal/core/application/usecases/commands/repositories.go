// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"swiftdrop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// RiderRepoFactory provides access to the rider repository within a transaction.
	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// RiderUoW manages transactions for rider-only operations.
	RiderUoW interface {
		TxManager
		RiderRepoFactory
	}

	// RiderUoWFactory creates new rider unit of work instances.
	RiderUoWFactory interface {
		Create() RiderUoW
	}

	// DeliveryUoW manages transactions for delivery-only operations.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// UserDeliveryUoW manages transactions spanning users and deliveries.
	// Used when creating a delivery, which reads the sender and receiver
	// accounts to derive the pickup and dropoff locations.
	UserDeliveryUoW interface {
		TxManager
		UserRepoFactory
		DeliveryRepoFactory
	}

	// UserDeliveryUoWFactory creates unit of work instances for delivery creation.
	UserDeliveryUoWFactory interface {
		Create() UserDeliveryUoW
	}

	// RiderDeliveryUoW manages transactions spanning riders and deliveries.
	// The status lifecycle engine runs inside one of these: the delivery
	// status change and the rider availability flip commit together or not
	// at all.
	RiderDeliveryUoW interface {
		TxManager
		RiderRepoFactory
		DeliveryRepoFactory
	}

	// RiderDeliveryUoWFactory creates unit of work instances for the lifecycle engine.
	RiderDeliveryUoWFactory interface {
		Create() RiderDeliveryUoW
	}
)
