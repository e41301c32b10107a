package commands

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/services"
)

// ErrOfferFailed is returned when a valid offer transition could not be
// persisted. The transition itself was legal; only the write failed.
var ErrOfferFailed = errors.New("offer could not be persisted")

// MakeOfferCommandHandler prices a matched request into a vendor offer.
// The material price comes from the storage's stocked material row and the
// order quantity; the delivery price from the per-km cost and the request's
// route distance. The request moves to waiting_client_response and its shown
// flag is cleared.
//
// A request that does not belong to the vendor, or whose status no longer
// allows an offer, surfaces as errs.ErrObjectNotFound or
// orderrequest.ErrInvalidTransition for the caller to translate.
type MakeOfferCommandHandler struct {
	uowFactory UoWFactory
	pricer     services.Pricer
}

// NewMakeOfferCommandHandler creates a handler for vendor offers.
func NewMakeOfferCommandHandler(uowFactory UoWFactory) MakeOfferCommandHandler {
	return MakeOfferCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewPricer(),
	}
}

// Handle processes the offer command: state check, pricing, mutation and
// audit row in one transaction.
func (h MakeOfferCommandHandler) Handle(ctx context.Context, command MakeOfferCommand) error {
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

	ord, err := uow.OrderRepository().Get(ctx, request.OrderID())
	if err != nil {
		return err
	}

	st, err := uow.StorageRepository().Get(ctx, request.StorageID())
	if err != nil {
		return err
	}

	material, err := st.MaterialByID(ord.MaterialID())
	if err != nil {
		return err
	}

	materialPrice := h.pricer.SelfMaterialPrice(material.UnitPrice, ord.Quantity())
	deliveryPrice := h.pricer.DeliveryPrice(material.DeliveryPerKm, request.DistanceKm())

	if err = request.MakeOffer(materialPrice, deliveryPrice); err != nil {
		return err
	}

	if err = uow.OrderRequestRepository().Update(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrOfferFailed, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrOfferFailed, err)
	}

	return nil
}
