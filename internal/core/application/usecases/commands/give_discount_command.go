package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGiveDiscountCommandIsNotConstructed = errors.New(
	"GiveDiscountCommand must be created via NewGiveDiscountCommand constructor",
)

// GiveDiscountCommand applies a vendor's percent discount to an offer and
// returns it to the client for a decision.
type GiveDiscountCommand struct {
	vendorID  kernel.UUID
	requestID kernel.UUID
	percent   float64

	guard guard.ConstructorGuard
}

// NewGiveDiscountCommand creates a validated command to grant a discount.
// The percent bounds are enforced by the pricing service in the handler so
// the violated bound reaches the caller.
func NewGiveDiscountCommand(vendorID, requestID kernel.UUID, percent float64) (GiveDiscountCommand, error) {
	if err := errors.Join(vendorID.Validate(), requestID.Validate()); err != nil {
		return GiveDiscountCommand{}, err
	}

	return GiveDiscountCommand{
		vendorID:  vendorID,
		requestID: requestID,
		percent:   percent,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// VendorID returns the acting vendor's identifier.
func (c *GiveDiscountCommand) VendorID() kernel.UUID { return c.vendorID }

// RequestID returns the identifier of the discounted request.
func (c *GiveDiscountCommand) RequestID() kernel.UUID { return c.requestID }

// Percent returns the granted discount percent.
func (c *GiveDiscountCommand) Percent() float64 { return c.percent }

// Validate ensures the command was created through the constructor.
func (c *GiveDiscountCommand) Validate() error {
	return c.guard.Validate(ErrGiveDiscountCommandIsNotConstructed)
}
