package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/orderrequest"
)

// OrderRequestRepository defines the persistence contract for order request
// aggregates. Updates flush the aggregate's pending history entries in the
// same transaction as the request row.
type OrderRequestRepository interface {
	// Add persists a new request aggregate together with its pending history.
	Add(ctx context.Context, aggregate *orderrequest.OrderRequest) error

	// Update persists changes to an existing request aggregate together with
	// its pending history.
	Update(ctx context.Context, aggregate *orderrequest.OrderRequest) error

	// Get retrieves a request aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*orderrequest.OrderRequest, error)

	// GetForVendor retrieves a request only if it belongs to the vendor.
	// Returns errs.ErrObjectNotFound for a foreign or absent request.
	GetForVendor(ctx context.Context, id, vendorID kernel.UUID) (*orderrequest.OrderRequest, error)

	// GetForOrder retrieves a request only if it belongs to the order.
	// Returns errs.ErrObjectNotFound for a foreign or absent request.
	GetForOrder(ctx context.Context, id, orderID kernel.UUID) (*orderrequest.OrderRequest, error)

	// GetAllNonCancelledForOrder retrieves every request of the order that is
	// not yet cancelled. Used by the cancellation cascade.
	GetAllNonCancelledForOrder(ctx context.Context, orderID kernel.UUID) ([]*orderrequest.OrderRequest, error)
}
