package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderOffersQueryIsNotConstructed = errors.New(
	"GetOrderOffersQuery must be created via NewGetOrderOffersQuery constructor",
)

// GetOrderOffersQuery retrieves every non-cancelled request for one order,
// priced or not, so the client can compare vendors.
type GetOrderOffersQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderOffersQuery creates a query for an order's offers.
func NewGetOrderOffersQuery(orderID kernel.UUID) (GetOrderOffersQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderOffersQuery{}, err
	}

	return GetOrderOffersQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order whose offers are requested.
func (q GetOrderOffersQuery) OrderID() kernel.UUID { return q.orderID }

// Validate ensures the query was created through the constructor.
func (q GetOrderOffersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderOffersQueryIsNotConstructed)
}

// GetOrderOffersQueryResponse is the read model of one vendor offer.
// Prices are zero until the vendor prices the request.
type GetOrderOffersQueryResponse struct {
	ID              kernel.UUID
	VendorID        kernel.UUID
	Status          string
	DistanceKm      float64
	DurationMinutes int
	MaterialPrice   int64
	DeliveryPrice   int64
	DiscountPercent *float64
	IsDiscounted    bool
}
