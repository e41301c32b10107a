package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrMakeOfferCommandIsNotConstructed = errors.New(
	"MakeOfferCommand must be created via NewMakeOfferCommand constructor",
)

// MakeOfferCommand turns a matched order request into a priced offer on
// behalf of a vendor.
type MakeOfferCommand struct {
	vendorID  kernel.UUID
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMakeOfferCommand creates a validated command to price a request.
func NewMakeOfferCommand(vendorID, requestID kernel.UUID) (MakeOfferCommand, error) {
	if err := errors.Join(vendorID.Validate(), requestID.Validate()); err != nil {
		return MakeOfferCommand{}, err
	}

	return MakeOfferCommand{
		vendorID:  vendorID,
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// VendorID returns the acting vendor's identifier.
func (c *MakeOfferCommand) VendorID() kernel.UUID { return c.vendorID }

// RequestID returns the identifier of the request being priced.
func (c *MakeOfferCommand) RequestID() kernel.UUID { return c.requestID }

// Validate ensures the command was created through the constructor.
func (c *MakeOfferCommand) Validate() error {
	return c.guard.Validate(ErrMakeOfferCommandIsNotConstructed)
}
