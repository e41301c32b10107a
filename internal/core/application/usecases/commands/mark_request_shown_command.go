package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrMarkRequestShownCommandIsNotConstructed = errors.New(
	"MarkRequestShownCommand must be created via NewMarkRequestShownCommand constructor",
)

// MarkRequestShownCommand flags a matched request as seen by its vendor, so
// it drops out of the unseen list.
type MarkRequestShownCommand struct {
	vendorID  kernel.UUID
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkRequestShownCommand creates a validated command to mark a request as seen.
func NewMarkRequestShownCommand(vendorID, requestID kernel.UUID) (MarkRequestShownCommand, error) {
	if err := errors.Join(vendorID.Validate(), requestID.Validate()); err != nil {
		return MarkRequestShownCommand{}, err
	}

	return MarkRequestShownCommand{
		vendorID:  vendorID,
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// VendorID returns the acting vendor's identifier.
func (c *MarkRequestShownCommand) VendorID() kernel.UUID { return c.vendorID }

// RequestID returns the identifier of the seen request.
func (c *MarkRequestShownCommand) RequestID() kernel.UUID { return c.requestID }

// Validate ensures the command was created through the constructor.
func (c *MarkRequestShownCommand) Validate() error {
	return c.guard.Validate(ErrMarkRequestShownCommandIsNotConstructed)
}
