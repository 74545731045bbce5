package memory

import (
	"context"

	"logistics/internal/core/domain/model/cash"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
)

// collectionRepository implements ports.CollectionRepository over the
// in-memory store.
type collectionRepository struct {
	store *Store
	uow   *StoreUnitOfWork
}

// NewCollectionRepository creates a standalone collection repository for
// read paths that do not need a transaction.
func NewCollectionRepository(store *Store) ports.CollectionRepository {
	return &collectionRepository{store: store}
}

func (r *collectionRepository) inTx() bool {
	return r.uow != nil && r.uow.active
}

func (r *collectionRepository) acquire() func() {
	if r.inTx() {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *collectionRepository) lookup(id uuid.UUID) (collectionRecord, bool) {
	if r.inTx() {
		if rec, ok := r.uow.stagedCollections[id]; ok {
			return rec, true
		}
	}
	rec, ok := r.store.collections[id]
	return rec, ok
}

// Add stores a new collection snapshot.
func (r *collectionRepository) Add(_ context.Context, aggregate *cash.Collection) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	release := r.acquire()
	defer release()

	rec := collectionToRecord(aggregate)
	if _, exists := r.lookup(rec.id); exists {
		return errs.NewValueIsInvalidErrorWithCause("collection",
			errAlreadyExists("collection", aggregate.ID()))
	}

	if r.inTx() {
		r.uow.stagedCollections[rec.id] = rec
		r.uow.stagedCollectionIDs = append(r.uow.stagedCollectionIDs, rec.id)
		return nil
	}

	r.store.collections[rec.id] = rec
	r.store.collectionIDs = append(r.store.collectionIDs, rec.id)
	return nil
}

// Update replaces the stored snapshot of an existing collection.
func (r *collectionRepository) Update(_ context.Context, aggregate *cash.Collection) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	release := r.acquire()
	defer release()

	rec := collectionToRecord(aggregate)
	if _, exists := r.lookup(rec.id); !exists {
		return errs.NewObjectNotFoundError("collection", aggregate.ID().String())
	}

	if r.inTx() {
		r.uow.stagedCollections[rec.id] = rec
		return nil
	}

	r.store.collections[rec.id] = rec
	return nil
}

// Get retrieves a collection by ID.
func (r *collectionRepository) Get(_ context.Context, id kernel.UUID) (*cash.Collection, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	release := r.acquire()
	defer release()

	rec, ok := r.lookup(id.Bytes())
	if !ok {
		return nil, errs.NewObjectNotFoundError("collection", id.String())
	}

	return collectionFromRecord(rec)
}

// GetAll retrieves every collection in submission order.
func (r *collectionRepository) GetAll(_ context.Context) ([]*cash.Collection, error) {
	return r.list(nil)
}

// GetAllForDriver retrieves a driver's collections in submission order.
func (r *collectionRepository) GetAllForDriver(_ context.Context, driverID kernel.UUID) ([]*cash.Collection, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	raw := driverID.Bytes()
	return r.list(&raw)
}

func (r *collectionRepository) list(driverID *uuid.UUID) ([]*cash.Collection, error) {
	release := r.acquire()
	defer release()

	ids := r.store.collectionIDs
	if r.inTx() {
		ids = append(ids[:len(ids):len(ids)], r.uow.stagedCollectionIDs...)
	}

	collections := make([]*cash.Collection, 0, len(ids))
	for _, id := range ids {
		rec, ok := r.lookup(id)
		if !ok {
			continue
		}
		if driverID != nil && rec.driverID != *driverID {
			continue
		}

		aggregate, err := collectionFromRecord(rec)
		if err != nil {
			return nil, err
		}
		collections = append(collections, aggregate)
	}

	return collections, nil
}
