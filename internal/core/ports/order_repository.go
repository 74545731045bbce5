package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderFilter narrows the orders returned by OrderRepository.List.
// Nil fields place no constraint; set fields are combined with AND.
type OrderFilter struct {
	Status   *order.Status
	DriverID *kernel.UUID
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List retrieves the orders matching the filter, in creation order.
	// A zero filter returns every order.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)
}
