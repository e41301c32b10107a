package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// VendorNotifier is the outbound contract for telling a vendor about new
// order requests at one of its storages. Delivery is asynchronous and
// best-effort: implementations must never block the caller on the outbound
// call nor propagate its failure.
type VendorNotifier interface {
	NotifyVendor(
		ctx context.Context,
		vendorID kernel.UUID,
		storageID kernel.UUID,
		distancesByOrder map[kernel.UUID]float64,
	)
}
