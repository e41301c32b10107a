package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves a client's orders that are still collecting
// offers, that is orders in created or vendor_search status.
//
// Example:
//
//	query, err := NewGetActiveOrdersQuery(clientID)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetActiveOrdersQuery struct {
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for a client's active orders.
func NewGetActiveOrdersQuery(clientID kernel.UUID) (GetActiveOrdersQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return GetActiveOrdersQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ClientID returns the identifier of the client whose orders are requested.
func (q GetActiveOrdersQuery) ClientID() kernel.UUID { return q.clientID }

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is the read model of one active order.
type GetActiveOrdersQueryResponse struct {
	ID         kernel.UUID
	MaterialID kernel.UUID
	Quantity   int
	Status     string
	Latitude   float64
	Longitude  float64
	Comment    string
}
