package memory

import (
	"context"
	"errors"

	"logistics/internal/core/ports"

	"github.com/google/uuid"
)

// ErrNoActiveTransaction is returned by Commit and Rollback when the unit
// of work has no transaction in progress.
var ErrNoActiveTransaction = errors.New("no active transaction")

// StoreUnitOfWorkFactory creates UnitOfWork instances bound to a shared
// in-memory store. Each business operation gets a fresh unit of work with
// its own staging area.
type StoreUnitOfWorkFactory struct {
	store *Store
}

// NewStoreUnitOfWorkFactory creates a factory for store-backed unit of
// work instances.
func NewStoreUnitOfWorkFactory(store *Store) *StoreUnitOfWorkFactory {
	return &StoreUnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork ready for a business transaction.
func (f *StoreUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &StoreUnitOfWork{store: f.store}
}

// StoreUnitOfWork implements the unit of work over the in-memory store.
// Begin takes the store-wide lock; repository writes accumulate in the
// staging maps and become visible only when Commit applies them. Rollback
// discards the staging area, leaving the store untouched. Either way the
// lock is released and the instance cannot be reused.
type StoreUnitOfWork struct {
	store  *Store
	active bool

	stagedDrivers      map[uuid.UUID]driverRecord
	stagedDriverIDs    []uuid.UUID
	stagedOrders       map[uuid.UUID]orderRecord
	stagedOrderIDs     []uuid.UUID
	stagedCollections  map[uuid.UUID]collectionRecord
	stagedCollectionIDs []uuid.UUID
}

// Begin acquires the store lock and opens the staging area. Calling Begin
// on an already active unit of work is a no-op.
func (uow *StoreUnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.store.mu.Lock()
	uow.active = true
	uow.stagedDrivers = make(map[uuid.UUID]driverRecord)
	uow.stagedDriverIDs = nil
	uow.stagedOrders = make(map[uuid.UUID]orderRecord)
	uow.stagedOrderIDs = nil
	uow.stagedCollections = make(map[uuid.UUID]collectionRecord)
	uow.stagedCollectionIDs = nil
	return nil
}

// Commit applies every staged write to the store and releases the lock.
// All writes of the transaction become visible together.
func (uow *StoreUnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	for id, rec := range uow.stagedDrivers {
		uow.store.drivers[id] = rec
	}
	uow.store.driverIDs = append(uow.store.driverIDs, uow.stagedDriverIDs...)

	for id, rec := range uow.stagedOrders {
		uow.store.orders[id] = rec
	}
	uow.store.orderIDs = append(uow.store.orderIDs, uow.stagedOrderIDs...)

	for id, rec := range uow.stagedCollections {
		uow.store.collections[id] = rec
	}
	uow.store.collectionIDs = append(uow.store.collectionIDs, uow.stagedCollectionIDs...)

	uow.reset()
	return nil
}

// Rollback discards every staged write and releases the lock.
func (uow *StoreUnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.reset()
	return nil
}

func (uow *StoreUnitOfWork) reset() {
	uow.stagedDrivers = nil
	uow.stagedDriverIDs = nil
	uow.stagedOrders = nil
	uow.stagedOrderIDs = nil
	uow.stagedCollections = nil
	uow.stagedCollectionIDs = nil
	uow.active = false
	uow.store.mu.Unlock()
}

// DriverRepository returns a driver repository bound to this unit of work.
func (uow *StoreUnitOfWork) DriverRepository() ports.DriverRepository {
	return &driverRepository{store: uow.store, uow: uow}
}

// OrderRepository returns an order repository bound to this unit of work.
func (uow *StoreUnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{store: uow.store, uow: uow}
}

// CollectionRepository returns a collection repository bound to this unit of work.
func (uow *StoreUnitOfWork) CollectionRepository() ports.CollectionRepository {
	return &collectionRepository{store: uow.store, uow: uow}
}
