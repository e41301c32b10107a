package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/orderrequest"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderOffersQueryHandler reads an order's offers from the database.
type GetOrderOffersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderOffersQueryHandler creates a handler for order offer queries.
func NewGetOrderOffersQueryHandler(db *gorm.DB) GetOrderOffersQueryHandler {
	return GetOrderOffersQueryHandler{db: db}
}

// Handle returns the order's non-cancelled requests sorted by total price,
// cheapest first, with unpriced requests at the end.
func (h GetOrderOffersQueryHandler) Handle(
	ctx context.Context,
	query GetOrderOffersQuery,
) ([]GetOrderOffersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offers := make([]GetOrderOffersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vendor_id,
			status,
			distance_km,
			duration_minutes,
			material_price,
			delivery_price,
			discount_percent,
			is_discounted
		FROM order_requests
		WHERE order_id = ?
		  AND status != ?
		  AND NOT deleted
		ORDER BY
			CASE WHEN material_price = 0 THEN 1 ELSE 0 END,
			material_price + delivery_price,
			id
	`, query.OrderID().String(), orderrequest.StatusCancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var offer GetOrderOffersQueryResponse
		var id, vendorID uuid.UUID

		err = rows.Scan(
			&id,
			&vendorID,
			&offer.Status,
			&offer.DistanceKm,
			&offer.DurationMinutes,
			&offer.MaterialPrice,
			&offer.DeliveryPrice,
			&offer.DiscountPercent,
			&offer.IsDiscounted,
		)
		if err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		offer.ID = requestID

		vID, idErr := kernel.UUIDFromBytes(vendorID[:])
		if idErr != nil {
			return nil, idErr
		}
		offer.VendorID = vID

		offers = append(offers, offer)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}
