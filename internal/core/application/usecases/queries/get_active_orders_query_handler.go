package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads active orders straight from the database,
// bypassing the aggregate. Read models stay cheap this way and never compete
// with command transactions.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns the client's non-deleted orders in the active status set,
// sorted by order ID for stable output.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]string, 0, len(order.ActiveStatuses()))
	for _, s := range order.ActiveStatuses() {
		statuses = append(statuses, s.String())
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			material_id,
			quantity,
			status,
			delivery_lat,
			delivery_lon,
			comment
		FROM orders
		WHERE client_id = ?
		  AND status IN ?
		  AND NOT deleted
		ORDER BY id
	`, query.ClientID().String(), statuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id, materialID uuid.UUID

		err = rows.Scan(
			&id,
			&materialID,
			&resp.Quantity,
			&resp.Status,
			&resp.Latitude,
			&resp.Longitude,
			&resp.Comment,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		matID, idErr := kernel.UUIDFromBytes(materialID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.MaterialID = matID

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
