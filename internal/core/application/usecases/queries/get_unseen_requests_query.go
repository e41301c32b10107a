package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetUnseenRequestsQueryIsNotConstructed = errors.New(
	"GetUnseenRequestsQuery must be created via NewGetUnseenRequestsQuery constructor",
)

// GetUnseenRequestsQuery retrieves a vendor's fresh matches, the requests
// the matching engine created that the vendor has not looked at yet.
type GetUnseenRequestsQuery struct {
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUnseenRequestsQuery creates a query for a vendor's unseen requests.
func NewGetUnseenRequestsQuery(vendorID kernel.UUID) (GetUnseenRequestsQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetUnseenRequestsQuery{}, err
	}

	return GetUnseenRequestsQuery{
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// VendorID returns the identifier of the vendor whose matches are requested.
func (q GetUnseenRequestsQuery) VendorID() kernel.UUID { return q.vendorID }

// Validate ensures the query was created through the constructor.
func (q GetUnseenRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnseenRequestsQueryIsNotConstructed)
}

// GetUnseenRequestsQueryResponse is the read model of one unseen match.
type GetUnseenRequestsQueryResponse struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	StorageID       kernel.UUID
	DistanceKm      float64
	DurationMinutes int
}
