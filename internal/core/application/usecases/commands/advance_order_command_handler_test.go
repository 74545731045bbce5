package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvanceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewAdvanceOrderCommand(orderID, order.Assigned)
	require.NoError(t, err)

	testOrder := buildOrder(t, orderID, 50000, order.CashOnDelivery)
	require.NoError(t, testOrder.Assign(kernel.NewUUID()))

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PickedUp, testOrder.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_DeliveryUpdatesDriver(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewAdvanceOrderCommand(orderID, order.InTransit)
	require.NoError(t, err)

	testOrder := buildOrder(t, orderID, 50000, order.CashOnDelivery)
	require.NoError(t, testOrder.Assign(driverID))
	require.NoError(t, testOrder.Advance(order.Assigned))
	require.NoError(t, testOrder.Advance(order.PickedUp))
	testDriver := buildDriver(t, driverID)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, testOrder.Status())
	assert.Equal(t, 1, testDriver.TotalDeliveries())
	assert.Equal(t, 1, testDriver.CompletedToday())
	assert.Equal(t, int64(50000), testDriver.PendingCash().Cents())
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_PrepaidDeliveryAddsNoCash(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewAdvanceOrderCommand(orderID, order.InTransit)
	require.NoError(t, err)

	testOrder := buildOrder(t, orderID, 50000, order.Prepaid)
	require.NoError(t, testOrder.Assign(driverID))
	require.NoError(t, testOrder.Advance(order.Assigned))
	require.NoError(t, testOrder.Advance(order.PickedUp))
	testDriver := buildDriver(t, driverID)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once()
	driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, testDriver.TotalDeliveries())
	assert.True(t, testDriver.PendingCash().IsZero())
}

func TestAdvanceOrderCommandHandler_Handle_StaleState(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	// Caller observed assigned, but the order already moved on.
	cmd, err := commands.NewAdvanceOrderCommand(orderID, order.Assigned)
	require.NoError(t, err)

	testOrder := buildOrder(t, orderID, 50000, order.CashOnDelivery)
	require.NoError(t, testOrder.Assign(kernel.NewUUID()))
	require.NoError(t, testOrder.Advance(order.Assigned))

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStaleState)
	assert.Equal(t, order.PickedUp, testOrder.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAdvanceOrderCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewAdvanceOrderCommand(orderID, order.Delivered)
	require.NoError(t, err)

	testOrder := buildDeliveredOrder(t, orderID, driverID, 50000)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", ctx)
}
