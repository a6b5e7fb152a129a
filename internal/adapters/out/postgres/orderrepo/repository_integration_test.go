package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"receipts/internal/adapters/out/postgres/orderrepo"
	"receipts/internal/core/domain/model/kernel"
	"receipts/internal/core/domain/model/order"
	"receipts/internal/pkg/errs"

	"github.com/shopspring/decimal"
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

func (m *MockAggregateTracker) TrackAggregate(id kernel.OrderID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence behavior.
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

	// TranslateError is what the production connection uses; the duplicate-id
	// rejection depends on it.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
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

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(rawID string) *order.Order {
	id, err := kernel.NewOrderID(rawID)
	suite.Require().NoError(err)
	grossValue, err := kernel.NewMoney(decimal.RequireFromString("150.00"))
	suite.Require().NoError(err)
	discount, err := kernel.NewMoney(decimal.RequireFromString("10.00"))
	suite.Require().NoError(err)

	o, err := order.NewOrder(id, "12345678901", "Maria Silva", "Wireless Mouse",
		grossValue, discount, "TX-42", time.Now())
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD1")

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var dto orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", "ORD1").Error)
	suite.Equal("Maria Silva", dto.CustomerName)
	suite.Equal("12345678901", dto.TaxID)
	suite.Equal("pending", dto.Status)
	suite.True(dto.GrossValue.Equal(decimal.RequireFromString("150.00")))
	suite.True(dto.Savings.Equal(decimal.RequireFromString("10.00")))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_Fails() {
	ctx := context.Background()
	first := suite.createTestOrder("ORD1")
	second := suite.createTestOrder("ORD1")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.EqualValues(1, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD1")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(testOrder))
	suite.Equal(testOrder.TaxID(), restored.TaxID())
	suite.Equal(testOrder.CustomerName(), restored.CustomerName())
	suite.Equal(testOrder.ProductDescription(), restored.ProductDescription())
	suite.Equal(testOrder.GrossValue().String(), restored.GrossValue().String())
	suite.Equal(testOrder.Discount().String(), restored.Discount().String())
	suite.Equal(testOrder.Savings().String(), restored.Savings().String())
	suite.Equal(testOrder.Status(), restored.Status())
	suite.Equal(testOrder.TransactionID(), restored.TransactionID())
	suite.WithinDuration(testOrder.CreatedAt(), restored.CreatedAt(), time.Second)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_Missing_Fails() {
	id, err := kernel.NewOrderID("NOPE")
	suite.Require().NoError(err)

	_, err = suite.repository.Get(context.Background(), id)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusChange_Persisted() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD1")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	changedAt := time.Now().Add(time.Minute)
	suite.Require().NoError(testOrder.ChangeStatus(order.Delivered, changedAt))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, restored.Status())
	suite.WithinDuration(changedAt, restored.UpdatedAt(), time.Second)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Missing_Fails() {
	testOrder := suite.createTestOrder("GHOST")

	err := suite.repository.Update(context.Background(), testOrder)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestExists() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD1")

	exists, err := suite.repository.Exists(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.False(exists)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	exists, err = suite.repository.Exists(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(exists)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
