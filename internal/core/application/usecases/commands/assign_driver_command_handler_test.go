package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	require.NoError(t, err)

	testOrder := buildOrder(t, orderID, 50000, order.CashOnDelivery)
	testDriver := buildDriver(t, driverID)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotificationSink)
	notifier.On("Notify", ctx, mock.MatchedBy(func(n ports.Notification) bool {
		return n.RecipientID == driverID.String() && n.Channel == ports.ChannelDriver
	})).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Assigned, testOrder.Status())
	require.NotNil(t, testOrder.Driver())
	assert.True(t, testOrder.Driver().IsEqual(driverID))
	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewAssignDriverCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotificationSink)
	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_DriverUnavailable(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	require.NoError(t, err)

	testOrder := buildOrder(t, orderID, 50000, order.CashOnDelivery)
	testDriver := buildDriver(t, driverID)
	require.NoError(t, testDriver.ChangeStatus(driver.OnBreak))

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotificationSink)
	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, driver.ErrDriverUnavailable)
	assert.Equal(t, order.Pending, testOrder.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignDriverCommandHandler_Handle_NonPendingOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	require.NoError(t, err)

	testOrder := buildOrder(t, orderID, 50000, order.CashOnDelivery)
	require.NoError(t, testOrder.Assign(kernel.NewUUID()))
	testDriver := buildDriver(t, driverID)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotificationSink)
	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", ctx)
}
