package requestrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/orderrequest"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRequestRepository implements ports.OrderRequestRepository using GORM.
type GormOrderRequestRepository struct {
	db *gorm.DB
}

// NewGormOrderRequestRepository creates a new GORM request repository.
func NewGormOrderRequestRepository(db *gorm.DB) *GormOrderRequestRepository {
	return &GormOrderRequestRepository{db: db}
}

// Add saves a new request together with its pending history rows.
func (r *GormOrderRequestRepository) Add(ctx context.Context, aggregate *orderrequest.OrderRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return r.flushHistory(ctx, aggregate)
}

// Update saves an existing request together with its pending history rows.
// All columns are written so cleared flags like shown survive the round trip.
func (r *GormOrderRequestRepository) Update(ctx context.Context, aggregate *orderrequest.OrderRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderRequestDTO{}).
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

// Get retrieves a request by ID.
func (r *GormOrderRequestRepository) Get(ctx context.Context, id kernel.UUID) (*orderrequest.OrderRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForVendor retrieves a request by ID scoped to its owning vendor.
// A request of a foreign vendor reads as not found.
func (r *GormOrderRequestRepository) GetForVendor(
	ctx context.Context,
	id, vendorID kernel.UUID,
) (*orderrequest.OrderRequest, error) {
	if err := errors.Join(id.Validate(), vendorID.Validate()); err != nil {
		return nil, err
	}

	var dto OrderRequestDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND vendor_id = ?", id.Bytes(), vendorID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForOrder retrieves a request by ID scoped to its order.
// A request of a foreign order reads as not found.
func (r *GormOrderRequestRepository) GetForOrder(
	ctx context.Context,
	id, orderID kernel.UUID,
) (*orderrequest.OrderRequest, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	var dto OrderRequestDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND order_id = ?", id.Bytes(), orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllNonCancelledForOrder retrieves every request of an order that has not
// been cancelled yet. Used by the cancellation cascade.
func (r *GormOrderRequestRepository) GetAllNonCancelledForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*orderrequest.OrderRequest, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderRequestDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "order_id = ? AND status != ?",
			orderID.Bytes(), orderrequest.StatusCancelled.String()).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*orderrequest.OrderRequest, 0, len(dtos))
	for _, dto := range dtos {
		request, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		requests = append(requests, request)
	}

	return requests, nil
}

// flushHistory writes pending status changes as audit rows and clears them.
func (r *GormOrderRequestRepository) flushHistory(
	ctx context.Context,
	aggregate *orderrequest.OrderRequest,
) error {
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
