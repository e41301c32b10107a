package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order and cascades the cancellation to
// all of its non-cancelled requests. The order and every request change in
// one transaction, so a failure on any request leaves the whole set intact.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the order and its requests atomically.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if !ord.ClientID().IsEqual(command.ClientID()) {
		return errs.NewObjectNotFoundError("order", command.OrderID())
	}

	if err = ord.Cancel(kernel.ActorClient); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	requests, err := uow.OrderRequestRepository().GetAllNonCancelledForOrder(ctx, command.OrderID())
	if err != nil {
		return err
	}

	for _, request := range requests {
		if err = request.Cancel(kernel.ActorSystem); err != nil {
			return err
		}

		if err = uow.OrderRequestRepository().Update(ctx, request); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
