package commands_test

import (
	"context"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/orderrequest"
	"marketplace/internal/core/domain/model/storage"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

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

func (m *MockOrderRepository) FindMatchCandidates(
	ctx context.Context,
	storageID kernel.UUID,
	location kernel.GeoPoint,
	radiusKm float64,
	materialIDs []kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, storageID, location, radiusKm, materialIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, r *orderrequest.OrderRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Update(ctx context.Context, r *orderrequest.OrderRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Get(ctx context.Context, id kernel.UUID) (*orderrequest.OrderRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderrequest.OrderRequest), args.Error(1)
}

func (m *MockRequestRepository) GetForVendor(
	ctx context.Context,
	id, vendorID kernel.UUID,
) (*orderrequest.OrderRequest, error) {
	args := m.Called(ctx, id, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderrequest.OrderRequest), args.Error(1)
}

func (m *MockRequestRepository) GetForOrder(
	ctx context.Context,
	id, orderID kernel.UUID,
) (*orderrequest.OrderRequest, error) {
	args := m.Called(ctx, id, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderrequest.OrderRequest), args.Error(1)
}

func (m *MockRequestRepository) GetAllNonCancelledForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*orderrequest.OrderRequest, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orderrequest.OrderRequest), args.Error(1)
}

type MockStorageRepository struct{ mock.Mock }

func (m *MockStorageRepository) Get(ctx context.Context, id kernel.UUID) (*storage.VendorStorage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.VendorStorage), args.Error(1)
}

func (m *MockStorageRepository) GetActivatedChunk(
	ctx context.Context,
	offset, limit int,
) ([]*storage.VendorStorage, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.VendorStorage), args.Error(1)
}

// MockUoW satisfies every unit of work interface in this package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OrderRequestRepository() ports.OrderRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRequestRepository)
}

func (m *MockUoW) StorageRepository() ports.StorageRepository {
	args := m.Called()
	return args.Get(0).(ports.StorageRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

type MockRouteClient struct{ mock.Mock }

func (m *MockRouteClient) GetRoute(ctx context.Context, from, to kernel.GeoPoint) (ports.Route, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(ports.Route), args.Error(1)
}

type MockVendorNotifier struct{ mock.Mock }

func (m *MockVendorNotifier) NotifyVendor(
	ctx context.Context,
	vendorID kernel.UUID,
	storageID kernel.UUID,
	distancesByOrder map[kernel.UUID]float64,
) {
	m.Called(ctx, vendorID, storageID, distancesByOrder)
}
