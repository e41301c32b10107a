package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// GiveDiscountCommandHandler recomputes an offer's prices under a percent
// discount and returns the request to waiting_client_response. The 70/30
// price reallocation and its rounding rules live in the pricing service.
type GiveDiscountCommandHandler struct {
	uowFactory RequestUoWFactory
	pricer     services.Pricer
}

// NewGiveDiscountCommandHandler creates a handler for vendor discounts.
func NewGiveDiscountCommandHandler(uowFactory RequestUoWFactory) GiveDiscountCommandHandler {
	return GiveDiscountCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewPricer(),
	}
}

// Handle processes the discount command: bounds check, price recomputation,
// transition and audit row in one transaction.
func (h GiveDiscountCommandHandler) Handle(ctx context.Context, command GiveDiscountCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.pricer.ValidatePercentDiscount(command.Percent()); err != nil {
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

	discounted, err := h.pricer.ApplyPercentDiscount(
		request.MaterialPrice(), request.DeliveryPrice(), command.Percent())
	if err != nil {
		return err
	}

	if err = request.GiveDiscount(command.Percent(), discounted.MaterialPrice, discounted.DeliveryPrice); err != nil {
		return err
	}

	if err = uow.OrderRequestRepository().Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
