// Package storagerepo reads vendor storages and their stocked materials.
// The core never mutates storages, so the repository is read-only.
package storagerepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/storage"

	"github.com/google/uuid"
)

// StorageDTO represents the database structure of a vendor storage.
// Stocked materials live in their own table and are loaded eagerly; the
// matching engine needs them on every scan.
type StorageDTO struct {
	ID          uuid.UUID            `gorm:"type:uuid;primaryKey"`
	VendorID    uuid.UUID            `gorm:"type:uuid;index"`
	Lat         float64              `gorm:""`
	Lon         float64              `gorm:""`
	MaxRadiusKm float64              `gorm:""`
	IsActivated bool                 `gorm:"index"`
	Materials   []StockedMaterialDTO `gorm:"foreignKey:StorageID"`
}

// TableName overrides GORM's default naming convention.
func (StorageDTO) TableName() string {
	return "storages"
}

// StockedMaterialDTO is one material row of a storage.
type StockedMaterialDTO struct {
	StorageID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	MaterialID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	IsAvailable   bool      `gorm:""`
	UnitPrice     int64     `gorm:""`
	DeliveryPerKm float64   `gorm:""`
}

// TableName overrides GORM's default naming convention.
func (StockedMaterialDTO) TableName() string {
	return "storage_materials"
}

// toDomain converts a database row back to a storage aggregate.
func toDomain(dto StorageDTO) (*storage.VendorStorage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lon)
	if err != nil {
		return nil, err
	}

	materials := make([]storage.StockedMaterial, 0, len(dto.Materials))
	for _, m := range dto.Materials {
		materialID, materialErr := kernel.UUIDFromBytes(m.MaterialID[:])
		if materialErr != nil {
			return nil, materialErr
		}

		materials = append(materials, storage.StockedMaterial{
			MaterialID:    materialID,
			IsAvailable:   m.IsAvailable,
			UnitPrice:     m.UnitPrice,
			DeliveryPerKm: m.DeliveryPerKm,
		})
	}

	return storage.NewVendorStorage(id, vendorID, location, dto.MaxRadiusKm, dto.IsActivated, materials)
}
