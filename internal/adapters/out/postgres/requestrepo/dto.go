// Package requestrepo persists the order request aggregate and its status
// history.
package requestrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/orderrequest"

	"github.com/google/uuid"
)

// OrderRequestDTO represents the database structure for persisting request
// aggregates. Prices are minor currency units; statuses are stored as their
// snake_case strings.
type OrderRequestDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID  `gorm:"type:uuid;index"`
	VendorID        uuid.UUID  `gorm:"type:uuid;index"`
	StorageID       uuid.UUID  `gorm:"type:uuid;index"`
	Status          string     `gorm:"type:varchar(64);index"`
	DistanceKm      float64    `gorm:""`
	DurationMinutes int        `gorm:""`
	MaterialPrice   int64      `gorm:""`
	DeliveryPrice   int64      `gorm:""`
	DiscountPercent *float64   `gorm:""`
	IsDiscounted    bool       `gorm:""`
	DeliveryFrom    *time.Time `gorm:""`
	DeliveryTo      *time.Time `gorm:""`
	Shown           bool       `gorm:""`
	Deleted         bool       `gorm:""`
}

// TableName overrides GORM's default naming convention.
func (OrderRequestDTO) TableName() string {
	return "order_requests"
}

// StatusChangeDTO is one audit row of the request status history.
type StatusChangeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID uuid.UUID `gorm:"type:uuid;index"`
	Status    string    `gorm:"type:varchar(64)"`
	ChangedBy string    `gorm:"type:varchar(32)"`
	ChangedAt time.Time `gorm:""`
}

// TableName overrides GORM's default naming convention.
func (StatusChangeDTO) TableName() string {
	return "request_status_history"
}

// fromDomain converts a request aggregate to its database representation.
func fromDomain(aggregate *orderrequest.OrderRequest) OrderRequestDTO {
	deliveryFrom, deliveryTo := aggregate.DeliveryWindow()

	return OrderRequestDTO{
		ID:              aggregate.ID().Bytes(),
		OrderID:         aggregate.OrderID().Bytes(),
		VendorID:        aggregate.VendorID().Bytes(),
		StorageID:       aggregate.StorageID().Bytes(),
		Status:          aggregate.Status().String(),
		DistanceKm:      aggregate.DistanceKm(),
		DurationMinutes: aggregate.DurationMinutes(),
		MaterialPrice:   aggregate.MaterialPrice(),
		DeliveryPrice:   aggregate.DeliveryPrice(),
		DiscountPercent: aggregate.DiscountPercent(),
		IsDiscounted:    aggregate.IsDiscounted(),
		DeliveryFrom:    deliveryFrom,
		DeliveryTo:      deliveryTo,
		Shown:           aggregate.IsShown(),
		Deleted:         aggregate.IsDeleted(),
	}
}

// historyFromDomain converts pending status changes to audit rows.
func historyFromDomain(changes []orderrequest.StatusChange) []StatusChangeDTO {
	rows := make([]StatusChangeDTO, 0, len(changes))
	for _, change := range changes {
		rows = append(rows, StatusChangeDTO{
			ID:        uuid.New(),
			RequestID: change.RequestID.Bytes(),
			Status:    change.Status.String(),
			ChangedBy: change.ChangedBy.String(),
			ChangedAt: change.At,
		})
	}
	return rows
}

// toDomain converts a database row back to a request aggregate.
func toDomain(dto OrderRequestDTO) (*orderrequest.OrderRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	storageID, err := kernel.UUIDFromBytes(dto.StorageID[:])
	if err != nil {
		return nil, err
	}

	status, err := orderrequest.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return orderrequest.RestoreOrderRequest(
		id, orderID, vendorID, storageID,
		status,
		dto.DistanceKm,
		dto.DurationMinutes,
		dto.MaterialPrice, dto.DeliveryPrice,
		dto.DiscountPercent,
		dto.IsDiscounted,
		dto.DeliveryFrom, dto.DeliveryTo,
		dto.Shown,
		dto.Deleted,
	)
}
