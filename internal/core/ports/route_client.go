package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// Route holds the road-network metrics returned by the routing provider.
type Route struct {
	DistanceKm      float64
	DurationMinutes int
}

// RouteClient is the outbound contract to the routing provider. Calls must be
// bounded by the context deadline; on failure or timeout the affected
// matching candidate is skipped, not retried in-loop.
type RouteClient interface {
	GetRoute(ctx context.Context, from, to kernel.GeoPoint) (Route, error)
}
