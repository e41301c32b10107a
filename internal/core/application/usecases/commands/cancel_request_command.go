package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCancelRequestCommandIsNotConstructed = errors.New(
	"CancelRequestCommand must be created via NewCancelRequestCommand constructor",
)

// CancelRequestCommand withdraws a single order request on behalf of the
// vendor that owns it.
type CancelRequestCommand struct {
	vendorID  kernel.UUID
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelRequestCommand creates a validated command to cancel one request.
func NewCancelRequestCommand(vendorID, requestID kernel.UUID) (CancelRequestCommand, error) {
	if err := errors.Join(vendorID.Validate(), requestID.Validate()); err != nil {
		return CancelRequestCommand{}, err
	}

	return CancelRequestCommand{
		vendorID:  vendorID,
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// VendorID returns the acting vendor's identifier.
func (c *CancelRequestCommand) VendorID() kernel.UUID { return c.vendorID }

// RequestID returns the identifier of the request to cancel.
func (c *CancelRequestCommand) RequestID() kernel.UUID { return c.requestID }

// Validate ensures the command was created through the constructor.
func (c *CancelRequestCommand) Validate() error {
	return c.guard.Validate(ErrCancelRequestCommandIsNotConstructed)
}
