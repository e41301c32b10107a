package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// MakePaymentCommandHandler records the commission payment: the order moves to
// creating_documents and its accepted request advances in the same
// transaction.
type MakePaymentCommandHandler struct {
	uowFactory UoWFactory
}

// NewMakePaymentCommandHandler creates a handler for commission payments.
func NewMakePaymentCommandHandler(uowFactory UoWFactory) MakePaymentCommandHandler {
	return MakePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle advances the order and its accepted request atomically.
func (h MakePaymentCommandHandler) Handle(ctx context.Context, command MakePaymentCommand) error {
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

	if err = ord.MarkCommissionPaid(kernel.ActorClient); err != nil {
		return err
	}

	acceptedID := ord.AcceptedRequestID()
	request, err := uow.OrderRequestRepository().GetForOrder(ctx, *acceptedID, command.OrderID())
	if err != nil {
		return err
	}

	if err = request.Advance(kernel.ActorClient); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.OrderRequestRepository().Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
