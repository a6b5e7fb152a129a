package queries_test

import (
	"context"
	"testing"
	"time"

	"receipts/internal/adapters/out/postgres/orderrepo"
	"receipts/internal/core/application/usecases/queries"
	"receipts/internal/core/domain/model/kernel"
	"receipts/internal/core/domain/model/order"
	"receipts/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.OrderID, _ any) {}

// OrderQueriesIntegrationTestSuite exercises the read-side handlers against a
// real PostgreSQL container seeded through the order repository.
type OrderQueriesIntegrationTestSuite struct {
	suite.Suite
	container         *postgres.PostgresContainer
	db                *gorm.DB
	repository        *orderrepo.GormOrderRepository
	searchHandler     queries.SearchOrdersQueryHandler
	listRecentHandler queries.ListRecentOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
}

func (suite *OrderQueriesIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.repository = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.searchHandler = queries.NewSearchOrdersQueryHandler(db)
	suite.listRecentHandler = queries.NewListRecentOrdersQueryHandler(db)
	suite.getOrderHandler = queries.NewGetOrderQueryHandler(db)
}

func (suite *OrderQueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *OrderQueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueriesIntegrationTestSuite) seedOrder(rawID, taxID, name string, createdAt time.Time) {
	id, err := kernel.NewOrderID(rawID)
	suite.Require().NoError(err)
	grossValue, err := kernel.NewMoney(decimal.RequireFromString("150.00"))
	suite.Require().NoError(err)
	discount, err := kernel.NewMoney(decimal.RequireFromString("10.00"))
	suite.Require().NoError(err)

	o, err := order.NewOrder(id, taxID, name, "Wireless Mouse",
		grossValue, discount, "", createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
}

func (suite *OrderQueriesIntegrationTestSuite) TestSearch_MatchesAllThreeColumns() {
	base := time.Now()
	suite.seedOrder("ORD-MATCH-1", "", "Alice Jones", base.Add(-3*time.Hour))
	suite.seedOrder("OTHER-2", "11122233344", "Bob Smith", base.Add(-2*time.Hour))
	suite.seedOrder("OTHER-3", "", "Carla MATCH Lima", base.Add(-time.Hour))

	query, err := queries.NewSearchOrdersQuery("MATCH", 0)
	suite.Require().NoError(err)

	result, err := suite.searchHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	// Newest first.
	suite.Equal("OTHER-3", result[0].ID)
	suite.Equal("ORD-MATCH-1", result[1].ID)

	// Tax id column matches too.
	query, err = queries.NewSearchOrdersQuery("222333", 0)
	suite.Require().NoError(err)
	result, err = suite.searchHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("OTHER-2", result[0].ID)
}

func (suite *OrderQueriesIntegrationTestSuite) TestSearch_RespectsLimit() {
	base := time.Now()
	for i := range 5 {
		suite.seedOrder(
			"ORD-"+string(rune('A'+i)), "", "Maria Silva",
			base.Add(-time.Duration(i)*time.Hour))
	}

	query, err := queries.NewSearchOrdersQuery("Maria", 3)
	suite.Require().NoError(err)

	result, err := suite.searchHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("ORD-A", result[0].ID)
	suite.Equal("ORD-B", result[1].ID)
	suite.Equal("ORD-C", result[2].ID)
}

func (suite *OrderQueriesIntegrationTestSuite) TestSearch_HostileTermIsBoundNotInterpolated() {
	suite.seedOrder("ORD1", "", "Maria Silva", time.Now())

	query, err := queries.NewSearchOrdersQuery("'; DROP TABLE orders; --", 0)
	suite.Require().NoError(err)

	result, err := suite.searchHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(result)

	// Table still intact.
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.EqualValues(1, count)
}

func (suite *OrderQueriesIntegrationTestSuite) TestListRecent_OrderedAndTruncated() {
	base := time.Now()
	for i := range 12 {
		suite.seedOrder(
			"ORD-"+string(rune('A'+i)), "", "Maria Silva",
			base.Add(-time.Duration(i)*time.Hour))
	}

	result, err := suite.listRecentHandler.Handle(
		context.Background(), queries.NewListRecentOrdersQuery(0))
	suite.Require().NoError(err)
	suite.Require().Len(result, queries.DefaultRecentLimit)

	for i := range len(result) - 1 {
		suite.True(result[i].CreatedAt.After(result[i+1].CreatedAt),
			"results must be ordered newest first")
	}
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrder_ComputesFinalValue() {
	suite.seedOrder("ORD1", "12345678901", "Maria Silva", time.Now())

	id, err := kernel.NewOrderID("ORD1")
	suite.Require().NoError(err)
	query, err := queries.NewGetOrderQuery(id)
	suite.Require().NoError(err)

	result, err := suite.getOrderHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("ORD1", result.ID)
	suite.Equal("Maria Silva", result.CustomerName)
	suite.Equal("pending", result.Status)
	suite.True(result.FinalValue.Equal(decimal.RequireFromString("140.00")))
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrder_Missing_Fails() {
	id, err := kernel.NewOrderID("NOPE")
	suite.Require().NoError(err)
	query, err := queries.NewGetOrderQuery(id)
	suite.Require().NoError(err)

	_, err = suite.getOrderHandler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesIntegrationTestSuite))
}
