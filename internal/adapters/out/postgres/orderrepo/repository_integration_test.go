package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"urbanmart/internal/adapters/out/postgres/orderrepo"
	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/order"
	"urbanmart/internal/pkg/errs"

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

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL container: snapshot round trips, history append behavior
// and the immutability of items across updates.
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.StatusHistoryDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, order_status_history").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_PersistsSnapshotAndHistory() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertRowCount(&orderrepo.OrderDTO{}, 1)
	suite.assertRowCount(&orderrepo.ItemDTO{}, 2)
	suite.assertRowCount(&orderrepo.StatusHistoryDTO{}, 1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAggregate() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal(original.MerchantID(), retrieved.MerchantID())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal("card", retrieved.PaymentMethod())
	suite.InEpsilon(original.Totals().Total.Amount(), retrieved.Totals().Total.Amount(), 1e-9)

	suite.Require().Len(retrieved.Items(), 2)
	suite.Equal(original.Items()[0].Name(), retrieved.Items()[0].Name())
	suite.InEpsilon(original.Items()[0].UnitPrice().Amount(), retrieved.Items()[0].UnitPrice().Amount(), 1e-9)

	suite.Require().Len(retrieved.History(), 1)
	suite.Equal(order.Pending, retrieved.History()[0].Status())
	suite.Equal("Order placed", retrieved.History()[0].Notes())

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

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransition_AppendsExactlyOneHistoryRow() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	merchantID := testOrder.MerchantID()
	suite.Require().NoError(
		testOrder.ChangeStatus(order.Confirmed, merchantID, "Payment received", time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Confirmed, retrieved.Status())
	suite.Require().Len(retrieved.History(), 2)
	suite.Equal(order.Confirmed, retrieved.History()[1].Status())
	suite.Equal("Payment received", retrieved.History()[1].Notes())

	// A second Update with the same aggregate must not duplicate history rows.
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))
	suite.assertRowCount(&orderrepo.StatusHistoryDTO{}, 2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ShippedTransition_PersistsTimestampAndTracking() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	merchantID := testOrder.MerchantID()
	now := time.Now().UTC()
	suite.Require().NoError(testOrder.ChangeStatus(order.Confirmed, merchantID, "", now))
	suite.Require().NoError(testOrder.ChangeStatus(order.Shipped, merchantID, "Handed to courier", now))
	testOrder.SetTrackingNumber("TRACK-42")
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Shipped, retrieved.Status())
	suite.Equal("TRACK-42", retrieved.TrackingNumber())
	suite.Require().NotNil(retrieved.ShippedAt())
	suite.WithinDuration(now, *retrieved.ShippedAt(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createTestOrder())
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DoesNotRewriteItemSnapshots() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(
		testOrder.ChangeStatus(order.Confirmed, testOrder.MerchantID(), "", time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	suite.assertRowCount(&orderrepo.ItemDTO{}, 2)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder builds a pending two-line order with valid totals.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	price1, err := kernel.NewMoney(30.00)
	suite.Require().NoError(err)
	price2, err := kernel.NewMoney(25.00)
	suite.Require().NoError(err)

	item1, err := order.NewItem(kernel.NewUUID(), "Desk Lamp", price1, 1)
	suite.Require().NoError(err)
	item2, err := order.NewItem(kernel.NewUUID(), "Notebook", price2, 1)
	suite.Require().NoError(err)

	subtotal := price1.Add(price2)
	tax := subtotal.MulRate(0.08)
	shipping := kernel.ZeroMoney()
	totals := order.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item1, item2},
		totals,
		"card",
		kernel.NewUUID(), kernel.NewUUID(),
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertRowCount(model any, expected int) {
	var count int64
	err := suite.db.Model(model).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
