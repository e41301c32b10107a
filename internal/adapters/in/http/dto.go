package http

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ClientID   string  `json:"client_id"`
	MaterialID string  `json:"material_id"`
	Quantity   int     `json:"quantity"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Comment    string  `json:"comment"`
}

// CreateOrderResponse returns the identifier of the created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// ActorRequest carries the acting party's identifier for lifecycle endpoints
// that need nothing else.
type ActorRequest struct {
	ClientID string `json:"client_id,omitempty"`
	VendorID string `json:"vendor_id,omitempty"`
}

// MakeOfferRequest is the body of POST /api/v1/requests/:request_id/offer.
type MakeOfferRequest struct {
	VendorID string `json:"vendor_id"`
}

// GiveDiscountRequest is the body of POST /api/v1/requests/:request_id/discount.
type GiveDiscountRequest struct {
	VendorID string  `json:"vendor_id"`
	Percent  float64 `json:"percent"`
}

// RequestDiscountRequest is the body of the client-side discount endpoint.
type RequestDiscountRequest struct {
	ClientID string `json:"client_id"`
}

// ConfirmRequestRequest is the body of the offer acceptance endpoint.
type ConfirmRequestRequest struct {
	ClientID string `json:"client_id"`
}

// ActiveOrder is one row of the client's active order list.
type ActiveOrder struct {
	ID         string  `json:"id"`
	MaterialID string  `json:"material_id"`
	Quantity   int     `json:"quantity"`
	Status     string  `json:"status"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Comment    string  `json:"comment,omitempty"`
}

// Offer is one row of an order's offer list.
type Offer struct {
	ID              string   `json:"id"`
	VendorID        string   `json:"vendor_id"`
	Status          string   `json:"status"`
	DistanceKm      float64  `json:"distance_km"`
	DurationMinutes int      `json:"duration_minutes"`
	MaterialPrice   int64    `json:"material_price"`
	DeliveryPrice   int64    `json:"delivery_price"`
	DiscountPercent *float64 `json:"discount_percent,omitempty"`
	IsDiscounted    bool     `json:"is_discounted"`
}

// UnseenRequest is one row of a vendor's unseen match list.
type UnseenRequest struct {
	ID              string  `json:"id"`
	OrderID         string  `json:"order_id"`
	StorageID       string  `json:"storage_id"`
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes int     `json:"duration_minutes"`
}
