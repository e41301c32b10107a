package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrConfirmRequestCommandIsNotConstructed = errors.New(
	"ConfirmRequestCommand must be created via NewConfirmRequestCommand constructor",
)

// ConfirmRequestCommand accepts one vendor offer for an order on the client's
// behalf.
type ConfirmRequestCommand struct {
	orderID   kernel.UUID
	clientID  kernel.UUID
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmRequestCommand creates a validated command to accept an offer.
func NewConfirmRequestCommand(orderID, clientID, requestID kernel.UUID) (ConfirmRequestCommand, error) {
	if err := errors.Join(orderID.Validate(), clientID.Validate(), requestID.Validate()); err != nil {
		return ConfirmRequestCommand{}, err
	}

	return ConfirmRequestCommand{
		orderID:   orderID,
		clientID:  clientID,
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order being confirmed.
func (c *ConfirmRequestCommand) OrderID() kernel.UUID { return c.orderID }

// ClientID returns the acting client's identifier.
func (c *ConfirmRequestCommand) ClientID() kernel.UUID { return c.clientID }

// RequestID returns the identifier of the accepted request.
func (c *ConfirmRequestCommand) RequestID() kernel.UUID { return c.requestID }

// Validate ensures the command was created through the constructor.
func (c *ConfirmRequestCommand) Validate() error {
	return c.guard.Validate(ErrConfirmRequestCommandIsNotConstructed)
}
