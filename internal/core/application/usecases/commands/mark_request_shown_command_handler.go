package commands

import (
	"context"
)

// MarkRequestShownCommandHandler records that a vendor has looked at a match.
// The shown flag is bookkeeping, not a lifecycle change, so no history row is
// written.
type MarkRequestShownCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewMarkRequestShownCommandHandler creates a handler for marking matches seen.
func NewMarkRequestShownCommandHandler(uowFactory RequestUoWFactory) MarkRequestShownCommandHandler {
	return MarkRequestShownCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle flags the request as seen by its vendor.
func (h MarkRequestShownCommandHandler) Handle(ctx context.Context, command MarkRequestShownCommand) error {
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

	request.MarkShown()

	if err = uow.OrderRequestRepository().Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
