package productrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"urbanmart/internal/adapters/out/postgres/productrepo"
	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/product"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// ProductRepositoryIntegrationTestSuite verifies the conditional stock
// decrement against a real PostgreSQL container, including the oversell race.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDecrementStock_SufficientStock_Decrements() {
	ctx := context.Background()

	p := suite.addProduct(5)

	err := suite.repository.DecrementStock(ctx, p.ID(), 3)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(2, retrieved.StockQuantity())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDecrementStock_InsufficientStock_LeavesRowUntouched() {
	ctx := context.Background()

	p := suite.addProduct(2)

	err := suite.repository.DecrementStock(ctx, p.ID(), 3)
	suite.Require().ErrorIs(err, product.ErrInsufficientStock)

	retrieved, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(2, retrieved.StockQuantity())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDecrementStock_ConcurrentCheckouts_NeverOversell() {
	ctx := context.Background()

	p := suite.addProduct(5)

	var wg sync.WaitGroup
	failures := make(chan error, 10)

	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := suite.repository.DecrementStock(ctx, p.ID(), 1); err != nil {
				failures <- err
			}
		}()
	}
	wg.Wait()
	close(failures)

	failed := 0
	for err := range failures {
		suite.Require().ErrorIs(err, product.ErrInsufficientStock)
		failed++
	}
	suite.Equal(5, failed)

	retrieved, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(0, retrieved.StockQuantity())
}

func (suite *ProductRepositoryIntegrationTestSuite) addProduct(stock int) *product.Product {
	price, err := kernel.NewMoney(19.99)
	suite.Require().NoError(err)

	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Desk Lamp", price, stock)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", p.ID(), p).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), p))
	return p
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
