package commands

import (
	"context"
)

// RequestDiscountCommandHandler moves an offer into client_want_discount on
// the client's behalf. The request is resolved through its order so a client
// cannot touch requests of foreign orders.
type RequestDiscountCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewRequestDiscountCommandHandler creates a handler for client discount requests.
func NewRequestDiscountCommandHandler(uowFactory RequestUoWFactory) RequestDiscountCommandHandler {
	return RequestDiscountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the discount request: state check, transition and audit
// row in one transaction.
func (h RequestDiscountCommandHandler) Handle(ctx context.Context, command RequestDiscountCommand) error {
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

	request, err := uow.OrderRequestRepository().GetForOrder(ctx, command.RequestID(), command.OrderID())
	if err != nil {
		return err
	}

	if err = request.RequestDiscount(); err != nil {
		return err
	}

	if err = uow.OrderRequestRepository().Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
