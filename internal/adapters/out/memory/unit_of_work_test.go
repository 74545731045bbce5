package memory_test

import (
	"testing"

	"logistics/internal/adapters/out/memory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreUnitOfWork_CommitMakesWritesVisible(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	factory := memory.NewStoreUnitOfWorkFactory(store)

	orderID := kernel.NewUUID()
	testOrder := buildOrder(t, orderID, 50000, order.CashOnDelivery)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, testOrder))
	require.NoError(t, uow.Commit(ctx))

	stored, err := memory.NewOrderRepository(store).Get(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, stored.ID().IsEqual(orderID))
	assert.Equal(t, testOrder.OrderNumber(), stored.OrderNumber())
}

func TestStoreUnitOfWork_RollbackDiscardsWrites(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	factory := memory.NewStoreUnitOfWorkFactory(store)

	orderID := kernel.NewUUID()
	testOrder := buildOrder(t, orderID, 50000, order.CashOnDelivery)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, testOrder))
	require.NoError(t, uow.Rollback(ctx))

	_, err := memory.NewOrderRepository(store).Get(ctx, orderID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestStoreUnitOfWork_ReadsSeeStagedWrites(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	factory := memory.NewStoreUnitOfWorkFactory(store)

	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	testOrder := buildOrder(t, orderID, 50000, order.CashOnDelivery)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	repo := uow.OrderRepository()
	require.NoError(t, repo.Add(ctx, testOrder))

	staged, err := repo.Get(ctx, orderID)
	require.NoError(t, err)
	require.NoError(t, staged.Assign(driverID))
	require.NoError(t, repo.Update(ctx, staged))

	reread, err := repo.Get(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, order.Assigned, reread.Status())

	require.NoError(t, uow.Rollback(ctx))
}

func TestStoreUnitOfWork_CommitWithoutBegin(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewStoreUnitOfWorkFactory(memory.NewStore())

	uow := factory.Create()
	assert.ErrorIs(t, uow.Commit(ctx), memory.ErrNoActiveTransaction)
	assert.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoActiveTransaction)
}

func TestStoreUnitOfWork_RollbackAfterCommitIsRejected(t *testing.T) {
	// Handlers unconditionally defer Rollback; after a successful Commit it
	// must fail fast instead of touching the store.
	ctx := t.Context()
	store := memory.NewStore()
	factory := memory.NewStoreUnitOfWorkFactory(store)

	orderID := kernel.NewUUID()
	testOrder := buildOrder(t, orderID, 50000, order.Prepaid)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, testOrder))
	require.NoError(t, uow.Commit(ctx))
	assert.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoActiveTransaction)

	_, err := memory.NewOrderRepository(store).Get(ctx, orderID)
	require.NoError(t, err)
}

func TestStoreUnitOfWork_MultiAggregateCommitIsAtomic(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	factory := memory.NewStoreUnitOfWorkFactory(store)

	driverID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	testDriver := buildDriver(t, driverID)
	testOrder := buildOrder(t, orderID, 50000, order.CashOnDelivery)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.DriverRepository().Add(ctx, testDriver))
	require.NoError(t, uow.OrderRepository().Add(ctx, testOrder))
	require.NoError(t, uow.Commit(ctx))

	_, err := memory.NewDriverRepository(store).Get(ctx, driverID)
	require.NoError(t, err)
	_, err = memory.NewOrderRepository(store).Get(ctx, orderID)
	require.NoError(t, err)
}
