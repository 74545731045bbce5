package memory

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
)

// driverRepository implements ports.DriverRepository over the in-memory
// store. When bound to an active unit of work, writes go to the staging
// area and reads see staged state; otherwise each call locks the store for
// its own duration.
type driverRepository struct {
	store *Store
	uow   *StoreUnitOfWork
}

// NewDriverRepository creates a standalone driver repository for read paths
// that do not need a transaction.
func NewDriverRepository(store *Store) ports.DriverRepository {
	return &driverRepository{store: store}
}

func (r *driverRepository) inTx() bool {
	return r.uow != nil && r.uow.active
}

func (r *driverRepository) acquire() func() {
	if r.inTx() {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *driverRepository) lookup(id uuid.UUID) (driverRecord, bool) {
	if r.inTx() {
		if rec, ok := r.uow.stagedDrivers[id]; ok {
			return rec, true
		}
	}
	rec, ok := r.store.drivers[id]
	return rec, ok
}

// Add stores a new driver snapshot.
func (r *driverRepository) Add(_ context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	release := r.acquire()
	defer release()

	rec := driverToRecord(aggregate)
	if _, exists := r.lookup(rec.id); exists {
		return errs.NewValueIsInvalidErrorWithCause("driver",
			errAlreadyExists("driver", aggregate.ID()))
	}

	if r.inTx() {
		r.uow.stagedDrivers[rec.id] = rec
		r.uow.stagedDriverIDs = append(r.uow.stagedDriverIDs, rec.id)
		return nil
	}

	r.store.drivers[rec.id] = rec
	r.store.driverIDs = append(r.store.driverIDs, rec.id)
	return nil
}

// Update replaces the stored snapshot of an existing driver.
func (r *driverRepository) Update(_ context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	release := r.acquire()
	defer release()

	rec := driverToRecord(aggregate)
	if _, exists := r.lookup(rec.id); !exists {
		return errs.NewObjectNotFoundError("driver", aggregate.ID().String())
	}

	if r.inTx() {
		r.uow.stagedDrivers[rec.id] = rec
		return nil
	}

	r.store.drivers[rec.id] = rec
	return nil
}

// Get retrieves a driver by ID.
func (r *driverRepository) Get(_ context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	release := r.acquire()
	defer release()

	rec, ok := r.lookup(id.Bytes())
	if !ok {
		return nil, errs.NewObjectNotFoundError("driver", id.String())
	}

	return driverFromRecord(rec)
}

// GetAll retrieves every driver in registration order.
func (r *driverRepository) GetAll(_ context.Context) ([]*driver.Driver, error) {
	release := r.acquire()
	defer release()

	ids := r.store.driverIDs
	if r.inTx() {
		ids = append(ids[:len(ids):len(ids)], r.uow.stagedDriverIDs...)
	}

	drivers := make([]*driver.Driver, 0, len(ids))
	for _, id := range ids {
		rec, ok := r.lookup(id)
		if !ok {
			continue
		}
		aggregate, err := driverFromRecord(rec)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, aggregate)
	}

	return drivers, nil
}
