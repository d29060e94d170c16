package assignmentrepo_test

import (
	"context"
	"testing"
	"time"

	"jobshop/internal/adapters/out/postgres/assignmentrepo"
	"jobshop/internal/core/domain/model/assignment"
	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/pkg/errs"

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

// AssignmentRepositoryIntegrationTestSuite provides integration tests for
// AssignmentRepository using PostgreSQL containers.
type AssignmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *assignmentrepo.GormAssignmentRepository
	tracker    *MockAggregateTracker
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&assignmentrepo.AssignmentDTO{}))
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE assignments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = assignmentrepo.NewGormAssignmentRepository(suite.db, suite.tracker)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestAdd_ValidAssignment_Success() {
	ctx := context.Background()

	entry := suite.createTestAssignment(42, 1, "A", 3)

	suite.tracker.On("TrackAggregate", entry.ID(), entry).Once()

	err := suite.repository.Add(ctx, entry)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&assignmentrepo.AssignmentDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestGet_RoundTripPreservesState() {
	ctx := context.Background()

	entry := suite.createTestAssignment(42, 1, "A", 3)
	suite.Require().NoError(entry.MarkReadyForQC())

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, entry))

	restored, err := suite.repository.Get(ctx, entry.ID())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(entry))
	suite.Equal(assignment.ReadyForQC, restored.Status())
	suite.Equal("Naseem", restored.WorkerName())
	suite.Equal("SFL1", restored.MachineCode())
	suite.Equal(3, restored.QuantityNo())
	suite.True(restored.AssigningDate().IsEqual(entry.AssigningDate()))
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestGetAllByKey_ReturnsLedger() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestAssignment(42, 1, "A", 2)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestAssignment(42, 1, "A", 3)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestAssignment(42, 2, "A", 1)))

	ledger, err := suite.repository.GetAllByKey(ctx, 42, 1, "A")
	suite.Require().NoError(err)
	suite.Len(ledger, 2)

	ledger, err = suite.repository.GetAllByKey(ctx, 42, 9, "A")
	suite.Require().NoError(err)
	suite.Empty(ledger)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestGetAllByJoNo() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestAssignment(42, 1, "A", 2)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestAssignment(42, 2, "A", 1)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestAssignment(43, 1, "A", 1)))

	entries, err := suite.repository.GetAllByJoNo(ctx, 42)
	suite.Require().NoError(err)
	suite.Len(entries, 2)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusTransition() {
	ctx := context.Background()

	entry := suite.createTestAssignment(42, 1, "A", 3)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, entry))

	suite.Require().NoError(entry.MarkReadyForQC())
	suite.Require().NoError(entry.Accept())
	suite.Require().NoError(suite.repository.Update(ctx, entry))

	restored, err := suite.repository.Get(ctx, entry.ID())
	suite.Require().NoError(err)
	suite.Equal(assignment.Accepted, restored.Status())
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) createTestAssignment(
	joNo, itemNo int,
	serialNo string,
	quantityNo int,
) *assignment.Assignment {
	assigningDate, err := kernel.DateFromString("2026-03-16")
	suite.Require().NoError(err)

	entry, err := assignment.NewAssignment(
		kernel.NewUUID(), joNo, itemNo, serialNo,
		assignment.Selection{
			MachineCategory: "Lathe",
			MachineSize:     "small",
			MachineCode:     "SFL1",
			WorkerName:      "Naseem",
		},
		quantityNo, assigningDate,
	)
	suite.Require().NoError(err)
	return entry
}

func TestAssignmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryIntegrationTestSuite))
}
