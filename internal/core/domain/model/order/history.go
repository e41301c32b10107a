package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// StatusChange is one append-only audit record of an order status change.
// History rows are never updated or deleted after creation.
type StatusChange struct {
	OrderID   kernel.UUID
	Status    Status
	ChangedBy kernel.Actor
	At        time.Time
}
