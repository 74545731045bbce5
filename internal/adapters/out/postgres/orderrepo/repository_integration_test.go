package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.OrderNumber(), retrieved.OrderNumber())
	suite.Equal(testOrder.TrackingNumber(), retrieved.TrackingNumber())
	suite.Equal("Asha Rao", retrieved.CustomerName())
	suite.Equal("+91 98450 12345", retrieved.CustomerPhone())
	suite.Equal(int64(50000), retrieved.Amount().Cents())
	suite.Equal(order.CashOnDelivery, retrieved.Payment())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Nil(retrieved.Driver())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LifecycleProgression() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	driverID := kernel.NewUUID()
	suite.Require().NoError(testOrder.Assign(driverID))
	suite.Require().NoError(testOrder.Advance(order.Assigned))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PickedUp, retrieved.Status())
	suite.Require().NotNil(retrieved.Driver())
	suite.Equal(driverID, *retrieved.Driver())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createTestOrder())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestList_Filters() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	driverID := kernel.NewUUID()
	otherDriverID := kernel.NewUUID()

	pendingOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, pendingOrder))

	assignedOrder := suite.createTestOrder()
	suite.Require().NoError(assignedOrder.Assign(driverID))
	suite.Require().NoError(suite.repository.Add(ctx, assignedOrder))

	otherAssigned := suite.createTestOrder()
	suite.Require().NoError(otherAssigned.Assign(otherDriverID))
	suite.Require().NoError(suite.repository.Add(ctx, otherAssigned))

	all, err := suite.repository.List(ctx, ports.OrderFilter{})
	suite.Require().NoError(err)
	suite.Len(all, 3)

	status := order.Assigned
	assigned, err := suite.repository.List(ctx, ports.OrderFilter{Status: &status})
	suite.Require().NoError(err)
	suite.Len(assigned, 2)

	mine, err := suite.repository.List(ctx, ports.OrderFilter{Status: &status, DriverID: &driverID})
	suite.Require().NoError(err)
	suite.Require().Len(mine, 1)
	suite.Equal(assignedOrder.ID(), mine[0].ID())

	pending := order.Pending
	none, err := suite.repository.List(ctx, ports.OrderFilter{Status: &pending, DriverID: &driverID})
	suite.Require().NoError(err)
	suite.Empty(none)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a basic cash-on-delivery test order.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	amount, err := kernel.NewMoney(50000)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), "Asha Rao", "+91 98450 12345",
		"14 MG Road, Bengaluru", amount, order.CashOnDelivery)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
