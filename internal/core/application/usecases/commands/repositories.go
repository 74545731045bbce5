// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CollectionRepoFactory provides access to the collection repository within a transaction.
	CollectionRepoFactory interface {
		CollectionRepository() ports.CollectionRepository
	}

	// DriverUoW manages transactions for driver-only operations.
	// Used when commands only modify driver aggregates.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CollectionUoW manages transactions for collection-only operations.
	// Used when commands only modify cash collection aggregates.
	CollectionUoW interface {
		TxManager
		CollectionRepoFactory
	}

	// CollectionUoWFactory creates new collection unit of work instances.
	CollectionUoWFactory interface {
		Create() CollectionUoW
	}

	// LifecycleUoW manages transactions across order and driver aggregates.
	// Used by order lifecycle commands, which update the driver alongside
	// the order (assignment, delivery bookkeeping).
	LifecycleUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// UoW manages transactions across all three aggregate types.
	// Used by reconciliation commands, which read orders and collections
	// and settle against the driver within one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   driverRepo := uow.DriverRepository()
	//   collectionRepo := uow.CollectionRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		DriverRepoFactory
		OrderRepoFactory
		CollectionRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
