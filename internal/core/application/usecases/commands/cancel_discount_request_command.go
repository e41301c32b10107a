package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCancelDiscountRequestCommandIsNotConstructed = errors.New(
	"CancelDiscountRequestCommand must be created via NewCancelDiscountRequestCommand constructor",
)

// CancelDiscountRequestCommand declines a client's discount request on
// behalf of a vendor, returning the offer unchanged to the client.
type CancelDiscountRequestCommand struct {
	vendorID  kernel.UUID
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelDiscountRequestCommand creates a validated command to decline a discount.
func NewCancelDiscountRequestCommand(vendorID, requestID kernel.UUID) (CancelDiscountRequestCommand, error) {
	if err := errors.Join(vendorID.Validate(), requestID.Validate()); err != nil {
		return CancelDiscountRequestCommand{}, err
	}

	return CancelDiscountRequestCommand{
		vendorID:  vendorID,
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// VendorID returns the acting vendor's identifier.
func (c *CancelDiscountRequestCommand) VendorID() kernel.UUID { return c.vendorID }

// RequestID returns the identifier of the targeted request.
func (c *CancelDiscountRequestCommand) RequestID() kernel.UUID { return c.requestID }

// Validate ensures the command was created through the constructor.
func (c *CancelDiscountRequestCommand) Validate() error {
	return c.guard.Validate(ErrCancelDiscountRequestCommandIsNotConstructed)
}
