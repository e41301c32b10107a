package commands

import (
	"context"
)

// CancelDiscountRequestCommandHandler declines a pending discount request:
// the discount flag is cleared and the request returns to
// waiting_client_response with its prices untouched.
type CancelDiscountRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewCancelDiscountRequestCommandHandler creates a handler for declining discounts.
func NewCancelDiscountRequestCommandHandler(uowFactory RequestUoWFactory) CancelDiscountRequestCommandHandler {
	return CancelDiscountRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decline: state check, transition and audit row in one
// transaction.
func (h CancelDiscountRequestCommandHandler) Handle(
	ctx context.Context,
	command CancelDiscountRequestCommand,
) error {
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

	if err = request.DeclineDiscount(); err != nil {
		return err
	}

	if err = uow.OrderRequestRepository().Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
