package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Updates flush the aggregate's pending history entries in the same
// transaction as the order row.
type OrderRepository interface {
	// Add persists a new order aggregate together with its pending history.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate together with
	// its pending history.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindMatchCandidates runs the geospatial candidate query for one
	// storage: active, non-deleted orders whose material is in materialIDs,
	// whose direct (great-circle) distance from location is strictly below
	// radiusKm, and which have no existing request from storageID.
	FindMatchCandidates(
		ctx context.Context,
		storageID kernel.UUID,
		location kernel.GeoPoint,
		radiusKm float64,
		materialIDs []kernel.UUID,
	) ([]*order.Order, error)
}
