package queries_test

import (
	"context"
	"testing"

	"logistics/internal/core/domain/model/cash"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCollectionRepository struct{ mock.Mock }

func (m *MockCollectionRepository) Add(ctx context.Context, c *cash.Collection) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCollectionRepository) Update(ctx context.Context, c *cash.Collection) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCollectionRepository) Get(ctx context.Context, id kernel.UUID) (*cash.Collection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cash.Collection), args.Error(1)
}

func (m *MockCollectionRepository) GetAll(ctx context.Context) ([]*cash.Collection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cash.Collection), args.Error(1)
}

func (m *MockCollectionRepository) GetAllForDriver(ctx context.Context, driverID kernel.UUID) ([]*cash.Collection, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cash.Collection), args.Error(1)
}

type MockLocationCache struct{ mock.Mock }

func (m *MockLocationCache) Set(ctx context.Context, location ports.DriverLocation) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockLocationCache) Remove(ctx context.Context, driverID kernel.UUID) error {
	args := m.Called(ctx, driverID)
	return args.Error(0)
}

func (m *MockLocationCache) GetAll(ctx context.Context) ([]ports.DriverLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.DriverLocation), args.Error(1)
}

func buildDriver(t *testing.T) *driver.Driver {
	t.Helper()

	d, err := driver.NewDriver(kernel.NewUUID(), "Rajesh Kumar", "KA-01-AB-1234")
	require.NoError(t, err)
	return d
}

func buildOrder(t *testing.T, cents int64) *order.Order {
	t.Helper()

	amount, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "Asha Rao", "+91 98450 12345",
		"14 MG Road, Bengaluru", amount, order.CashOnDelivery)
	require.NoError(t, err)
	return o
}

func buildDeliveredOrder(t *testing.T, driverID kernel.UUID, cents int64) *order.Order {
	t.Helper()

	o := buildOrder(t, cents)
	require.NoError(t, o.Assign(driverID))
	require.NoError(t, o.Advance(order.Assigned))
	require.NoError(t, o.Advance(order.PickedUp))
	require.NoError(t, o.Advance(order.InTransit))
	return o
}

func buildCollection(t *testing.T, driverID kernel.UUID, orderIDs []kernel.UUID, cents int64) *cash.Collection {
	t.Helper()

	amount, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	c, err := cash.NewCollection(kernel.NewUUID(), driverID, orderIDs, amount, "")
	require.NoError(t, err)
	return c
}
