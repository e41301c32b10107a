package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/requestrepo"
	"marketplace/internal/adapters/out/postgres/storagerepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/orderrequest"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based Unit of Work
// against a real PostgreSQL database, including the status history rows
// the repositories flush inside the business transaction.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite starts the PostgreSQL container and migrates the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.StatusChangeDTO{},
		&requestrepo.OrderRequestDTO{}, &requestrepo.StatusChangeDTO{},
		&storagerepo.StorageDTO{}, &storagerepo.StockedMaterialDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables so tests never see each other's rows.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_status_history, order_requests, request_status_history, storages, storage_materials CASCADE").Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory hands out isolated
// instances that each expose all three repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.OrderRequestRepository())
	suite.NotNil(uow1.StorageRepository())
	suite.NotNil(uow2.OrderRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, repeated begin,
// commit and rollback all behave.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Repeated begin should be a no-op")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies commit and rollback fail
// without an active transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_CommitPersistsOrderWithHistory verifies a committed
// transaction persists the aggregate row and its status history together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsOrderWithHistory() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	suite.Empty(testOrder.PendingChanges(), "Add should flush and clear pending history")

	// Visible inside the transaction before commit.
	retrieved, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusCreated, retrieved.Status())

	var historyCount int64
	err = suite.db.Model(&orderrepo.StatusChangeDTO{}).
		Where("order_id = ?", testOrder.ID().String()).
		Count(&historyCount).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), historyCount, "Creation should leave exactly one history row")
}

// TestUnitOfWork_RollbackDiscardsOrderAndHistory verifies rollback discards
// both the aggregate row and the history rows flushed in the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsOrderAndHistory() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	var historyCount int64
	err = suite.db.Model(&orderrepo.StatusChangeDTO{}).
		Where("order_id = ?", testOrder.ID().String()).
		Count(&historyCount).Error
	suite.Require().NoError(err)
	suite.Zero(historyCount, "History rows should not survive rollback")
}

// TestUnitOfWork_MultiRepositoryTransaction verifies order and request
// repositories commit atomically inside one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = testOrder.StartVendorSearch(kernel.ActorSystem)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	testRequest := createTestRequest(testOrder.ID())
	err = uow.OrderRequestRepository().Add(ctx, testRequest)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusVendorSearch, retrievedOrder.Status())

	retrievedRequest, err := newUow.OrderRequestRepository().Get(ctx, testRequest.ID())
	suite.Require().NoError(err)
	suite.True(retrievedRequest.OrderID().IsEqual(testOrder.ID()))
	suite.Equal(orderrequest.StatusCreated, retrievedRequest.Status())

	var orderHistory, requestHistory int64
	err = suite.db.Model(&orderrepo.StatusChangeDTO{}).
		Where("order_id = ?", testOrder.ID().String()).
		Count(&orderHistory).Error
	suite.Require().NoError(err)
	suite.Equal(int64(2), orderHistory, "Creation and vendor search should each leave a row")

	err = suite.db.Model(&requestrepo.StatusChangeDTO{}).
		Where("request_id = ?", testRequest.ID().String()).
		Count(&requestHistory).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), requestHistory)
}

// TestUnitOfWork_HistoryFlushedOnlyOnce verifies an update without new
// domain changes does not duplicate already flushed history rows.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_HistoryFlushedOnlyOnce() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	var historyCount int64
	err = suite.db.Model(&orderrepo.StatusChangeDTO{}).
		Where("order_id = ?", testOrder.ID().String()).
		Count(&historyCount).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), historyCount)
}

// TestUnitOfWork_RepositoryIsolation verifies transactions on separate
// instances only see their own uncommitted rows.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder()
	order2 := createTestOrder()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)
	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")
	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies repositories run against the
// pool directly when no transaction was begun.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
}

// TestUnitOfWork_RequestLifecycleRoundTrip runs a request through offer and
// discount and verifies every field survives the round trip.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RequestLifecycleRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	testRequest := createTestRequest(testOrder.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.OrderRequestRepository().Add(ctx, testRequest)
	suite.Require().NoError(err)

	err = testRequest.MakeOffer(1000, 500)
	suite.Require().NoError(err)
	err = testRequest.RequestDiscount()
	suite.Require().NoError(err)
	err = testRequest.GiveDiscount(10, 945, 405)
	suite.Require().NoError(err)
	err = uow.OrderRequestRepository().Update(ctx, testRequest)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderRequestRepository().Get(ctx, testRequest.ID())
	suite.Require().NoError(err)

	suite.Equal(orderrequest.StatusWaitingClientResponse, retrieved.Status())
	suite.Equal(int64(945), retrieved.MaterialPrice())
	suite.Equal(int64(405), retrieved.DeliveryPrice())
	suite.True(retrieved.IsDiscounted())
	suite.Require().NotNil(retrieved.DiscountPercent())
	suite.InDelta(10.0, *retrieved.DiscountPercent(), 1e-9)

	var historyCount int64
	err = suite.db.Model(&requestrepo.StatusChangeDTO{}).
		Where("request_id = ?", testRequest.ID().String()).
		Count(&historyCount).Error
	suite.Require().NoError(err)
	suite.Equal(int64(4), historyCount, "Creation, offer, discount request and discount should each leave a row")
}

// TestUnitOfWork_MatchCandidateQuery verifies the geospatial candidate
// query filters by radius, material and existing requests.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MatchCandidateQuery() {
	ctx := context.Background()
	uow := suite.factory.Create()

	storageID := kernel.NewUUID()
	materialID := kernel.NewUUID()
	location, err := kernel.NewGeoPoint(55.75, 37.61)
	suite.Require().NoError(err)

	near := createTestOrderAt(materialID, 55.76, 37.62)
	far := createTestOrderAt(materialID, 56.8587, 35.9176) // Tver, ~160 km out
	wrongMaterial := createTestOrderAt(kernel.NewUUID(), 55.76, 37.62)
	alreadyRequested := createTestOrderAt(materialID, 55.74, 37.60)

	for _, o := range []*order.Order{near, far, wrongMaterial, alreadyRequested} {
		err = uow.OrderRepository().Add(ctx, o)
		suite.Require().NoError(err)
	}

	existingRequest, err := orderrequest.NewOrderRequest(
		kernel.NewUUID(), alreadyRequested.ID(), kernel.NewUUID(), storageID, 2.5, 6)
	suite.Require().NoError(err)
	err = uow.OrderRequestRepository().Add(ctx, existingRequest)
	suite.Require().NoError(err)

	candidates, err := uow.OrderRepository().FindMatchCandidates(
		ctx, storageID, location, 50, []kernel.UUID{materialID})

	suite.Require().NoError(err)
	suite.Require().Len(candidates, 1)
	suite.True(candidates[0].ID().IsEqual(near.ID()))

	// Without stocked materials there is nothing to match.
	candidates, err = uow.OrderRepository().FindMatchCandidates(
		ctx, storageID, location, 50, nil)
	suite.Require().NoError(err)
	suite.Empty(candidates)
}

// createTestOrder creates a valid order for testing purposes.
func createTestOrder() *order.Order {
	return createTestOrderAt(kernel.NewUUID(), 55.75, 37.61)
}

// createTestOrderAt creates a valid order for the material at the point.
func createTestOrderAt(materialID kernel.UUID, lat, lon float64) *order.Order {
	point, _ := kernel.NewGeoPoint(lat, lon)
	testOrder, _ := order.NewOrder(
		kernel.NewUUID(), materialID, kernel.NewUUID(), point, 10, "ring the bell twice")
	return testOrder
}

// createTestRequest creates a valid request bound to the order.
func createTestRequest(orderID kernel.UUID) *orderrequest.OrderRequest {
	testRequest, _ := orderrequest.NewOrderRequest(
		kernel.NewUUID(), orderID, kernel.NewUUID(), kernel.NewUUID(), 12.5, 18)
	return testRequest
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
