package storagerepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/storage"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStorageRepository implements ports.StorageRepository using GORM.
type GormStorageRepository struct {
	db *gorm.DB
}

// NewGormStorageRepository creates a new GORM storage repository.
func NewGormStorageRepository(db *gorm.DB) *GormStorageRepository {
	return &GormStorageRepository{db: db}
}

// Get retrieves a storage with its materials by ID.
func (r *GormStorageRepository) Get(ctx context.Context, id kernel.UUID) (*storage.VendorStorage, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StorageDTO
	err := r.db.WithContext(ctx).
		Preload("Materials").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("storage", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActivatedChunk retrieves one page of activated storages with their
// materials, ordered by ID so paging is stable across the scan.
func (r *GormStorageRepository) GetActivatedChunk(
	ctx context.Context,
	offset, limit int,
) ([]*storage.VendorStorage, error) {
	var dtos []StorageDTO
	err := r.db.WithContext(ctx).
		Preload("Materials").
		Where("is_activated").
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	storages := make([]*storage.VendorStorage, 0, len(dtos))
	for _, dto := range dtos {
		s, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		storages = append(storages, s)
	}

	return storages, nil
}
