package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrMakePaymentCommandIsNotConstructed = errors.New(
	"MakePaymentCommand must be created via NewMakePaymentCommand constructor",
)

// MakePaymentCommand records the client's commission payment for an order.
type MakePaymentCommand struct {
	orderID  kernel.UUID
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMakePaymentCommand creates a validated command to record commission payment.
func NewMakePaymentCommand(orderID, clientID kernel.UUID) (MakePaymentCommand, error) {
	if err := errors.Join(orderID.Validate(), clientID.Validate()); err != nil {
		return MakePaymentCommand{}, err
	}

	return MakePaymentCommand{
		orderID:  orderID,
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the paid order.
func (c *MakePaymentCommand) OrderID() kernel.UUID { return c.orderID }

// ClientID returns the acting client's identifier.
func (c *MakePaymentCommand) ClientID() kernel.UUID { return c.clientID }

// Validate ensures the command was created through the constructor.
func (c *MakePaymentCommand) Validate() error {
	return c.guard.Validate(ErrMakePaymentCommandIsNotConstructed)
}
