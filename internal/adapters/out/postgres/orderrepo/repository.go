package orderrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order together with its pending history rows.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return r.flushHistory(ctx, aggregate)
}

// Update saves an existing order together with its pending history rows.
// All columns are written, including ones holding zero values, so cleared
// flags survive the round trip.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return r.flushHistory(ctx, aggregate)
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindMatchCandidates retrieves the orders a storage can serve: active,
// not deleted, material stocked by the storage, delivery point strictly
// inside the storage radius and no request from this storage yet. Distance
// is computed with the haversine formula inline so the filter runs entirely
// in the database.
func (r *GormOrderRepository) FindMatchCandidates(
	ctx context.Context,
	storageID kernel.UUID,
	location kernel.GeoPoint,
	radiusKm float64,
	materialIDs []kernel.UUID,
) ([]*order.Order, error) {
	if len(materialIDs) == 0 {
		return nil, nil
	}

	statuses := make([]string, 0, len(order.ActiveStatuses()))
	for _, s := range order.ActiveStatuses() {
		statuses = append(statuses, s.String())
	}

	materials := make([]string, 0, len(materialIDs))
	for _, id := range materialIDs {
		materials = append(materials, id.String())
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Raw(`
		SELECT o.*
		FROM orders o
		WHERE o.status IN ?
		  AND o.is_activated
		  AND NOT o.deleted
		  AND o.material_id IN ?
		  AND NOT EXISTS (
			SELECT 1 FROM order_requests req
			WHERE req.order_id = o.id AND req.storage_id = ?
		  )
		  AND 2 * 6371 * asin(sqrt(
			pow(sin(radians(o.delivery_lat - ?) / 2), 2) +
			cos(radians(?)) * cos(radians(o.delivery_lat)) *
			pow(sin(radians(o.delivery_lon - ?) / 2), 2)
		  )) < ?
		ORDER BY o.id
	`,
		statuses,
		materials,
		storageID.String(),
		location.Latitude(),
		location.Latitude(),
		location.Longitude(),
		radiusKm,
	).Scan(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// flushHistory writes pending status changes as audit rows and clears them.
func (r *GormOrderRepository) flushHistory(ctx context.Context, aggregate *order.Order) error {
	changes := aggregate.PendingChanges()
	if len(changes) == 0 {
		return nil
	}

	rows := historyFromDomain(changes)
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return err
	}

	aggregate.ClearPendingChanges()
	return nil
}
