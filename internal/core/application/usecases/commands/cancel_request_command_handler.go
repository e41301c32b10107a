package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// CancelRequestCommandHandler cancels a vendor's own request. A second cancel
// fails the terminal-state check inside the aggregate and writes no second
// history row.
type CancelRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewCancelRequestCommandHandler creates a handler for request cancellation.
func NewCancelRequestCommandHandler(uowFactory RequestUoWFactory) CancelRequestCommandHandler {
	return CancelRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the request and records the change in one transaction.
func (h CancelRequestCommandHandler) Handle(ctx context.Context, command CancelRequestCommand) error {
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

	request, err := uow.OrderRequestRepository().GetForVendor(ctx, command.RequestID(), command.VendorID())
	if err != nil {
		return err
	}

	if err = request.Cancel(kernel.ActorVendor); err != nil {
		return err
	}

	if err = uow.OrderRequestRepository().Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
