package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ConfirmRequestCommandHandler accepts one offer for an order. The order
// moves to waiting_commission_payment with the accepted request pinned on it,
// and the request itself advances, both inside one transaction. Concurrent
// confirms race on the transactional state check and the loser fails with an
// invalid transition.
type ConfirmRequestCommandHandler struct {
	uowFactory UoWFactory
}

// NewConfirmRequestCommandHandler creates a handler for offer acceptance.
func NewConfirmRequestCommandHandler(uowFactory UoWFactory) ConfirmRequestCommandHandler {
	return ConfirmRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle confirms the request and advances both aggregates atomically.
func (h ConfirmRequestCommandHandler) Handle(ctx context.Context, command ConfirmRequestCommand) error {
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

	request, err := uow.OrderRequestRepository().GetForOrder(ctx, command.RequestID(), command.OrderID())
	if err != nil {
		return err
	}

	if err = ord.ConfirmRequest(command.RequestID()); err != nil {
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
