package hiringrepo_test

import (
	"context"
	"testing"
	"time"

	"urbanmart/internal/adapters/out/postgres/hiringrepo"
	"urbanmart/internal/core/domain/model/hiring"
	"urbanmart/internal/core/domain/model/kernel"
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

// HiringRequestRepositoryIntegrationTestSuite verifies hiring request
// persistence against a real PostgreSQL container, in particular that the
// partial unique index rejects a second pending request of the same kind for
// the same (organization, delivery person) pair.
type HiringRequestRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *hiringrepo.GormHiringRequestRepository
	tracker    *MockAggregateTracker
}

func (suite *HiringRequestRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&hiringrepo.RequestDTO{}))
}

func (suite *HiringRequestRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE hiring_requests").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = hiringrepo.NewGormHiringRequestRepository(suite.db, suite.tracker)
}

func (suite *HiringRequestRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *HiringRequestRepositoryIntegrationTestSuite) newRequest(
	orgID, deliveryUserID kernel.UUID, kind hiring.Kind,
) *hiring.Request {
	request, err := hiring.NewRequest(
		kernel.NewUUID(), orgID, deliveryUserID, kind, time.Now().UTC())
	suite.Require().NoError(err)
	return request
}

func (suite *HiringRequestRepositoryIntegrationTestSuite) TestAdd_DuplicatePendingSameKind_Conflicts() {
	ctx := context.Background()

	orgID := kernel.NewUUID()
	deliveryUserID := kernel.NewUUID()

	first := suite.newRequest(orgID, deliveryUserID, hiring.Invitation)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.newRequest(orgID, deliveryUserID, hiring.Invitation)
	err := suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.assertRowCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *HiringRequestRepositoryIntegrationTestSuite) TestAdd_DifferentKindOrPair_Inserts() {
	ctx := context.Background()

	orgID := kernel.NewUUID()
	deliveryUserID := kernel.NewUUID()

	invitation := suite.newRequest(orgID, deliveryUserID, hiring.Invitation)
	suite.tracker.On("TrackAggregate", invitation.ID(), invitation).Once()
	suite.Require().NoError(suite.repository.Add(ctx, invitation))

	// Same pair, other kind: the delivery person may still apply on their own.
	application := suite.newRequest(orgID, deliveryUserID, hiring.Application)
	suite.tracker.On("TrackAggregate", application.ID(), application).Once()
	suite.Require().NoError(suite.repository.Add(ctx, application))

	// Same org and kind, other delivery person.
	other := suite.newRequest(orgID, kernel.NewUUID(), hiring.Invitation)
	suite.tracker.On("TrackAggregate", other.ID(), other).Once()
	suite.Require().NoError(suite.repository.Add(ctx, other))

	suite.assertRowCount(3)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *HiringRequestRepositoryIntegrationTestSuite) TestAdd_AfterResolution_AllowsNewRequest() {
	ctx := context.Background()

	orgID := kernel.NewUUID()
	deliveryUserID := kernel.NewUUID()

	first := suite.newRequest(orgID, deliveryUserID, hiring.Invitation)
	suite.tracker.On("TrackAggregate", first.ID(), first).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Rejecting the pending request frees the slot for a fresh invitation.
	suite.Require().NoError(first.Reject())
	suite.Require().NoError(suite.repository.Update(ctx, first))

	retry := suite.newRequest(orgID, deliveryUserID, hiring.Invitation)
	suite.tracker.On("TrackAggregate", retry.ID(), retry).Once()
	suite.Require().NoError(suite.repository.Add(ctx, retry))

	suite.assertRowCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *HiringRequestRepositoryIntegrationTestSuite) TestGet_MissingRequest_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *HiringRequestRepositoryIntegrationTestSuite) assertRowCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&hiringrepo.RequestDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestHiringRequestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(HiringRequestRepositoryIntegrationTestSuite))
}
