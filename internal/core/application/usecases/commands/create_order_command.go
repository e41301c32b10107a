package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers a finished client order and places it into the
// vendor-search pool so the next matching run can pick it up.
type CreateOrderCommand struct {
	orderID       kernel.UUID
	materialID    kernel.UUID
	clientID      kernel.UUID
	deliveryPoint kernel.GeoPoint
	quantity      int
	comment       string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated command to register an order.
func NewCreateOrderCommand(
	orderID, materialID, clientID kernel.UUID,
	deliveryPoint kernel.GeoPoint,
	quantity int,
	comment string,
) (CreateOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		materialID.Validate(),
		clientID.Validate(),
		deliveryPoint.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	if quantity <= 0 {
		return CreateOrderCommand{}, errs.NewValueIsInvalidError("quantity")
	}

	return CreateOrderCommand{
		orderID:       orderID,
		materialID:    materialID,
		clientID:      clientID,
		deliveryPoint: deliveryPoint,
		quantity:      quantity,
		comment:       comment,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier for the new order.
func (c *CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// MaterialID returns the ordered material's identifier.
func (c *CreateOrderCommand) MaterialID() kernel.UUID { return c.materialID }

// ClientID returns the owning client's identifier.
func (c *CreateOrderCommand) ClientID() kernel.UUID { return c.clientID }

// DeliveryPoint returns the delivery coordinates.
func (c *CreateOrderCommand) DeliveryPoint() kernel.GeoPoint { return c.deliveryPoint }

// Quantity returns the ordered quantity in cubic units.
func (c *CreateOrderCommand) Quantity() int { return c.quantity }

// Comment returns the client's free-text comment.
func (c *CreateOrderCommand) Comment() string { return c.comment }

// Validate ensures the command was created through the constructor.
func (c *CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}
