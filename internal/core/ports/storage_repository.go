package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/storage"
)

// StorageRepository defines the read contract for vendor storages.
// The core never mutates storages.
type StorageRepository interface {
	// Get retrieves one storage with its stocked materials.
	Get(ctx context.Context, id kernel.UUID) (*storage.VendorStorage, error)

	// GetActivatedChunk pages through activated storages that stock at least
	// one available material, ordered by id. Returns an empty slice once the
	// offset runs past the population.
	GetActivatedChunk(ctx context.Context, offset, limit int) ([]*storage.VendorStorage, error)
}
