package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/orderrequest"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnseenRequestsQueryHandler reads a vendor's unseen matches from the
// database. Marking them as seen is a separate command, so polling this query
// never mutates anything.
type GetUnseenRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnseenRequestsQueryHandler creates a handler for unseen match queries.
func NewGetUnseenRequestsQueryHandler(db *gorm.DB) GetUnseenRequestsQueryHandler {
	return GetUnseenRequestsQueryHandler{db: db}
}

// Handle returns the vendor's created, not yet shown requests sorted by
// distance so the closest match comes first.
func (h GetUnseenRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetUnseenRequestsQuery,
) ([]GetUnseenRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]GetUnseenRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			storage_id,
			distance_km,
			duration_minutes
		FROM order_requests
		WHERE vendor_id = ?
		  AND status = ?
		  AND NOT shown
		  AND NOT deleted
		ORDER BY distance_km, id
	`, query.VendorID().String(), orderrequest.StatusCreated.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var request GetUnseenRequestsQueryResponse
		var id, orderID, storageID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&storageID,
			&request.DistanceKm,
			&request.DurationMinutes,
		)
		if err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		request.ID = requestID

		oID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		request.OrderID = oID

		sID, idErr := kernel.UUIDFromBytes(storageID[:])
		if idErr != nil {
			return nil, idErr
		}
		request.StorageID = sID

		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
