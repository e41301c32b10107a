package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels a client's order together with every request
// that is still alive for it.
type CancelOrderCommand struct {
	orderID  kernel.UUID
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a validated command to cancel an order.
func NewCancelOrderCommand(orderID, clientID kernel.UUID) (CancelOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), clientID.Validate()); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID:  orderID,
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order to cancel.
func (c *CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ClientID returns the acting client's identifier.
func (c *CancelOrderCommand) ClientID() kernel.UUID { return c.clientID }

// Validate ensures the command was created through the constructor.
func (c *CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}
