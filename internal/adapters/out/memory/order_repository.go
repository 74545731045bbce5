package memory

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
)

// orderRepository implements ports.OrderRepository over the in-memory store.
type orderRepository struct {
	store *Store
	uow   *StoreUnitOfWork
}

// NewOrderRepository creates a standalone order repository for read paths
// that do not need a transaction.
func NewOrderRepository(store *Store) ports.OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) inTx() bool {
	return r.uow != nil && r.uow.active
}

func (r *orderRepository) acquire() func() {
	if r.inTx() {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *orderRepository) lookup(id uuid.UUID) (orderRecord, bool) {
	if r.inTx() {
		if rec, ok := r.uow.stagedOrders[id]; ok {
			return rec, true
		}
	}
	rec, ok := r.store.orders[id]
	return rec, ok
}

// Add stores a new order snapshot.
func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	release := r.acquire()
	defer release()

	rec := orderToRecord(aggregate)
	if _, exists := r.lookup(rec.id); exists {
		return errs.NewValueIsInvalidErrorWithCause("order",
			errAlreadyExists("order", aggregate.ID()))
	}

	if r.inTx() {
		r.uow.stagedOrders[rec.id] = rec
		r.uow.stagedOrderIDs = append(r.uow.stagedOrderIDs, rec.id)
		return nil
	}

	r.store.orders[rec.id] = rec
	r.store.orderIDs = append(r.store.orderIDs, rec.id)
	return nil
}

// Update replaces the stored snapshot of an existing order.
func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	release := r.acquire()
	defer release()

	rec := orderToRecord(aggregate)
	if _, exists := r.lookup(rec.id); !exists {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if r.inTx() {
		r.uow.stagedOrders[rec.id] = rec
		return nil
	}

	r.store.orders[rec.id] = rec
	return nil
}

// Get retrieves an order by ID.
func (r *orderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	release := r.acquire()
	defer release()

	rec, ok := r.lookup(id.Bytes())
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return orderFromRecord(rec)
}

// List retrieves the orders matching the filter, in creation order. Filter
// fields combine with AND; a zero filter returns everything.
func (r *orderRepository) List(_ context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	release := r.acquire()
	defer release()

	ids := r.store.orderIDs
	if r.inTx() {
		ids = append(ids[:len(ids):len(ids)], r.uow.stagedOrderIDs...)
	}

	orders := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		rec, ok := r.lookup(id)
		if !ok {
			continue
		}

		if filter.Status != nil && rec.status != int(*filter.Status) {
			continue
		}
		if filter.DriverID != nil {
			if rec.driverID == nil || *rec.driverID != filter.DriverID.Bytes() {
				continue
			}
		}

		aggregate, err := orderFromRecord(rec)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
