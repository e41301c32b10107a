package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/orderrequest"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newOfferedRequest returns a request priced by the vendor and waiting for
// the client's decision.
func newOfferedRequest(t *testing.T, orderID kernel.UUID) *orderrequest.OrderRequest {
	t.Helper()

	request, err := orderrequest.NewOrderRequest(
		kernel.NewUUID(), orderID, kernel.NewUUID(), kernel.NewUUID(), 8, 20)
	require.NoError(t, err)
	require.NoError(t, request.MakeOffer(900, 300))
	request.ClearPendingChanges()
	return request
}

func TestConfirmRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	clientID := kernel.NewUUID()
	ord := newCancellableOrder(t, clientID)
	request := newOfferedRequest(t, ord.ID())

	cmd, err := commands.NewConfirmRequestCommand(ord.ID(), clientID, request.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		uow.On("OrderRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("GetForOrder", ctx, request.ID(), ord.ID()).Return(request, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, ord).Return(nil).Once(),
		uow.On("OrderRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Update", ctx, request).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmRequestCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.Equal(t, order.StatusWaitingCommissionPayment, ord.Status())
	require.NotNil(t, ord.AcceptedRequestID())
	require.True(t, ord.AcceptedRequestID().IsEqual(request.ID()))
	require.Equal(t, orderrequest.StatusInProgress, request.Status())

	orderRepo.AssertExpectations(t)
	requestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmRequestCommandHandler_Handle_SecondConfirmLosesRace(t *testing.T) {
	ctx := t.Context()

	clientID := kernel.NewUUID()
	ord := newCancellableOrder(t, clientID)
	request := newOfferedRequest(t, ord.ID())
	require.NoError(t, ord.ConfirmRequest(kernel.NewUUID())) // another offer won

	cmd, err := commands.NewConfirmRequestCommand(ord.ID(), clientID, request.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		uow.On("OrderRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("GetForOrder", ctx, request.ID(), ord.ID()).Return(request, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	require.Equal(t, orderrequest.StatusWaitingClientResponse, request.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestMakePaymentCommandHandler_Handle_AdvancesOrderAndAcceptedRequest(t *testing.T) {
	ctx := t.Context()

	clientID := kernel.NewUUID()
	ord := newCancellableOrder(t, clientID)
	request := newOfferedRequest(t, ord.ID())
	require.NoError(t, ord.ConfirmRequest(request.ID()))
	require.NoError(t, request.Advance(kernel.ActorClient))
	ord.ClearPendingChanges()
	request.ClearPendingChanges()

	cmd, err := commands.NewMakePaymentCommand(ord.ID(), clientID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		uow.On("OrderRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("GetForOrder", ctx, request.ID(), ord.ID()).Return(request, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, ord).Return(nil).Once(),
		uow.On("OrderRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Update", ctx, request).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMakePaymentCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.Equal(t, order.StatusCreatingDocuments, ord.Status())
	require.Equal(t, orderrequest.StatusWaitingDocuments, request.Status())
}

func TestMakePaymentCommandHandler_Handle_BeforeConfirm(t *testing.T) {
	ctx := t.Context()

	clientID := kernel.NewUUID()
	ord := newCancellableOrder(t, clientID) // still in vendor_search, nothing accepted

	cmd, err := commands.NewMakePaymentCommand(ord.ID(), clientID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMakePaymentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}
