// Package orderrepo persists the order aggregate and its status history.
// DTOs map the aggregate to relational rows; history rows are flushed from
// the aggregate's pending changes in the same transaction as the order row.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their snake_case strings so the table reads well and
// survives reordering of the status enum.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID          uuid.UUID  `gorm:"type:uuid;index"`
	MaterialID        uuid.UUID  `gorm:"type:uuid;index"`
	Quantity          int        `gorm:""`
	Status            string     `gorm:"type:varchar(64);index"`
	DeliveryLat       float64    `gorm:""`
	DeliveryLon       float64    `gorm:""`
	AcceptedRequestID *uuid.UUID `gorm:"type:uuid"`
	Comment           string     `gorm:"type:text"`
	IsActivated       bool       `gorm:""`
	Deleted           bool       `gorm:""`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// StatusChangeDTO is one audit row of the order status history.
type StatusChangeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    string    `gorm:"type:varchar(64)"`
	ChangedBy string    `gorm:"type:varchar(32)"`
	ChangedAt time.Time `gorm:""`
}

// TableName overrides GORM's default naming convention.
func (StatusChangeDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var acceptedRequestID *uuid.UUID
	if id := aggregate.AcceptedRequestID(); id != nil {
		raw := id.Bytes()
		acceptedRequestID = &raw
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		ClientID:          aggregate.ClientID().Bytes(),
		MaterialID:        aggregate.MaterialID().Bytes(),
		Quantity:          aggregate.Quantity(),
		Status:            aggregate.Status().String(),
		DeliveryLat:       aggregate.DeliveryPoint().Latitude(),
		DeliveryLon:       aggregate.DeliveryPoint().Longitude(),
		AcceptedRequestID: acceptedRequestID,
		Comment:           aggregate.Comment(),
		IsActivated:       aggregate.IsActivated(),
		Deleted:           aggregate.IsDeleted(),
	}
}

// historyFromDomain converts pending status changes to audit rows.
func historyFromDomain(changes []order.StatusChange) []StatusChangeDTO {
	rows := make([]StatusChangeDTO, 0, len(changes))
	for _, change := range changes {
		rows = append(rows, StatusChangeDTO{
			ID:        uuid.New(),
			OrderID:   change.OrderID.Bytes(),
			Status:    change.Status.String(),
			ChangedBy: change.ChangedBy.String(),
			ChangedAt: change.At,
		})
	}
	return rows
}

// toDomain converts a database row back to an order aggregate via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	materialID, err := kernel.UUIDFromBytes(dto.MaterialID[:])
	if err != nil {
		return nil, err
	}

	var acceptedRequestID *kernel.UUID
	if dto.AcceptedRequestID != nil {
		requestID, requestErr := kernel.UUIDFromBytes((*dto.AcceptedRequestID)[:])
		if requestErr != nil {
			return nil, requestErr
		}
		acceptedRequestID = &requestID
	}

	deliveryPoint, err := kernel.NewGeoPoint(dto.DeliveryLat, dto.DeliveryLon)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, materialID, clientID,
		deliveryPoint,
		dto.Quantity,
		status,
		acceptedRequestID,
		dto.Comment,
		dto.IsActivated,
		dto.Deleted,
	)
}
