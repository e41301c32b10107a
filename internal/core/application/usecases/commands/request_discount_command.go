package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRequestDiscountCommandIsNotConstructed = errors.New(
	"RequestDiscountCommand must be created via NewRequestDiscountCommand constructor",
)

// RequestDiscountCommand records a client's wish for a discount on one offer.
type RequestDiscountCommand struct {
	requestID kernel.UUID
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestDiscountCommand creates a validated command to ask for a discount.
func NewRequestDiscountCommand(requestID, orderID kernel.UUID) (RequestDiscountCommand, error) {
	if err := errors.Join(requestID.Validate(), orderID.Validate()); err != nil {
		return RequestDiscountCommand{}, err
	}

	return RequestDiscountCommand{
		requestID: requestID,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RequestID returns the identifier of the targeted request.
func (c *RequestDiscountCommand) RequestID() kernel.UUID { return c.requestID }

// OrderID returns the identifier of the client's order.
func (c *RequestDiscountCommand) OrderID() kernel.UUID { return c.orderID }

// Validate ensures the command was created through the constructor.
func (c *RequestDiscountCommand) Validate() error {
	return c.guard.Validate(ErrRequestDiscountCommandIsNotConstructed)
}
