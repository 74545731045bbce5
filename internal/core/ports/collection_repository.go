package ports

import (
	"context"

	"logistics/internal/core/domain/model/cash"
	"logistics/internal/core/domain/model/kernel"
)

// CollectionRepository defines the persistence contract for cash collection
// aggregates.
type CollectionRepository interface {
	// Add persists a new collection aggregate to storage.
	// The collection must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *cash.Collection) error

	// Update persists changes to an existing collection aggregate.
	// The collection must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *cash.Collection) error

	// Get retrieves a collection aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError if no such collection exists.
	Get(ctx context.Context, id kernel.UUID) (*cash.Collection, error)

	// GetAll retrieves every collection in submission order.
	GetAll(ctx context.Context) ([]*cash.Collection, error)

	// GetAllForDriver retrieves a driver's collections in submission order.
	GetAllForDriver(ctx context.Context, driverID kernel.UUID) ([]*cash.Collection, error)
}
