package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"servicetrack/internal/adapters/out/postgres/orderrepo"
	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/core/domain/model/order"
	"servicetrack/internal/pkg/errs"

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

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL instance, the append-only status log included.
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.StatusEventDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, status_events").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(trackValue int64) *order.Order {
	trackNumber, err := kernel.NewTrackNumber(trackValue)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), trackNumber,
		"Siti", "Asus laptop", "no power",
		kernel.NewUUID(), time.Now(),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.createTestOrder(34)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal("TNS-00034", loaded.TrackNumber().String())
	suite.Equal("Siti", loaded.CustomerName())
	suite.Equal("Asus laptop", loaded.Item())
	suite.Equal(order.Pending, loaded.Status())
	suite.Require().Len(loaded.StatusLog(), 1)
	suite.Equal(order.Pending, loaded.StatusLog()[0].Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackNumber() {
	ctx := context.Background()
	first := suite.createTestOrder(34)
	second := suite.createTestOrder(34)

	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByTrackNumber() {
	ctx := context.Background()
	aggregate := suite.createTestOrder(120)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	trackNumber, err := kernel.TrackNumberFromString("TNS-00120")
	suite.Require().NoError(err)

	loaded, err := suite.repository.GetByTrackNumber(ctx, trackNumber)
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(aggregate.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AppendsStatusLog() {
	ctx := context.Background()
	aggregate := suite.createTestOrder(34)
	actorID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.ChangeStatus(order.Process, "work started", actorID, time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	suite.Require().NoError(aggregate.ChangeStatus(order.Ready, "repair finished", actorID, time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Ready, loaded.Status())
	suite.Require().Len(loaded.StatusLog(), 3)
	suite.Equal(order.Pending, loaded.StatusLog()[0].Status())
	suite.Equal(order.Process, loaded.StatusLog()[1].Status())
	suite.Equal(order.Ready, loaded.StatusLog()[2].Status())
	suite.Equal("work started", loaded.StatusLog()[1].Note())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NeverRewritesExistingLogRows() {
	ctx := context.Background()
	aggregate := suite.createTestOrder(34)
	actorID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.ChangeStatus(order.Process, "", actorID, time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	// Writing the same aggregate again must not duplicate or alter log rows.
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	var count int64
	suite.Require().NoError(suite.db.
		Model(&orderrepo.StatusEventDTO{}).
		Where("order_id = ?", aggregate.ID().Bytes()).
		Count(&count).Error)
	suite.Equal(int64(2), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleWriterIsRejected() {
	ctx := context.Background()
	aggregate := suite.createTestOrder(34)
	actorID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	// Two writers load the same revision.
	first, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.ChangeStatus(order.Process, "first writer", actorID, time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.ChangeStatus(order.WaitingApproval, "second writer", actorID, time.Now()))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrVersionIsInvalid)

	// The stale writer's event never landed; the stored log still ends with
	// the first writer's transition.
	var rows []orderrepo.StatusEventDTO
	suite.Require().NoError(suite.db.
		Where("order_id = ?", aggregate.ID().Bytes()).
		Order("seq").
		Find(&rows).Error)
	suite.Require().Len(rows, 2)
	suite.Equal(order.Process.String(), rows[1].Status)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Assignments() {
	ctx := context.Background()
	aggregate := suite.createTestOrder(34)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	techIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	suite.Require().NoError(aggregate.AssignTechnicians(techIDs, time.Now()))
	suite.Require().NoError(aggregate.AssignSales("Dewi", time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Len(loaded.Technicians(), 2)
	suite.Equal("Dewi", loaded.SalesName())

	// Assignments leave the status log alone.
	suite.Len(loaded.StatusLog(), 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder() {
	aggregate := suite.createTestOrder(34)
	err := suite.repository.Update(context.Background(), aggregate)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestOrderRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
