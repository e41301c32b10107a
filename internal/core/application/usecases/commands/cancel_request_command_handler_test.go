package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/orderrequest"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	request := newOpenRequest(t, kernel.NewUUID())
	vendorID := request.VendorID()

	cmd, err := commands.NewCancelRequestCommand(vendorID, request.ID())
	require.NoError(t, err)

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("GetForVendor", ctx, request.ID(), vendorID).Return(request, nil).Once(),
		uow.On("OrderRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Update", ctx, request).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelRequestCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.Equal(t, orderrequest.StatusCancelled, request.Status())
	require.True(t, request.IsDeleted())
	requestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelRequestCommandHandler_Handle_SecondCancelFailsWithoutHistory(t *testing.T) {
	ctx := t.Context()

	request := newOpenRequest(t, kernel.NewUUID())
	vendorID := request.VendorID()
	require.NoError(t, request.Cancel(kernel.ActorVendor))
	request.ClearPendingChanges()

	cmd, err := commands.NewCancelRequestCommand(vendorID, request.ID())
	require.NoError(t, err)

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("GetForVendor", ctx, request.ID(), vendorID).Return(request, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, orderrequest.ErrInvalidTransition)
	require.Empty(t, request.PendingChanges())
	requestRepo.AssertNotCalled(t, "Update", ctx, request)
}
