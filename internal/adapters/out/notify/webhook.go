// Package notify implements best-effort vendor notification over a webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

const notifyTimeout = 10 * time.Second

// WebhookNotifier posts new-match notifications to a vendor-facing webhook.
// Delivery happens in a background goroutine with its own deadline: the
// matching run that triggered the notification is never blocked and never
// sees a delivery failure.
type WebhookNotifier struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhookNotifier creates a notifier posting to the given URL.
func NewWebhookNotifier(url string, logger *slog.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		url:        url,
		httpClient: &http.Client{Timeout: notifyTimeout},
		logger:     logger.With("component", "vendor_notifier"),
	}
}

type notification struct {
	VendorID  string              `json:"vendor_id"`
	StorageID string              `json:"storage_id"`
	Orders    []orderNotification `json:"orders"`
}

type orderNotification struct {
	OrderID    string  `json:"order_id"`
	DistanceKm float64 `json:"distance_km"`
}

// NotifyVendor sends the notification asynchronously. Failures are logged and
// dropped; the vendor will still see the requests in the unseen list.
func (n *WebhookNotifier) NotifyVendor(
	_ context.Context,
	vendorID kernel.UUID,
	storageID kernel.UUID,
	distancesByOrder map[kernel.UUID]float64,
) {
	if len(distancesByOrder) == 0 {
		return
	}

	payload := notification{
		VendorID:  vendorID.String(),
		StorageID: storageID.String(),
		Orders:    make([]orderNotification, 0, len(distancesByOrder)),
	}
	for orderID, distance := range distancesByOrder {
		payload.Orders = append(payload.Orders, orderNotification{
			OrderID:    orderID.String(),
			DistanceKm: distance,
		})
	}

	go n.send(payload)
}

func (n *WebhookNotifier) send(payload notification) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		n.logger.ErrorContext(ctx, "marshal notification", "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		n.logger.ErrorContext(ctx, "build notification request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.logger.ErrorContext(ctx, "deliver notification",
			"vendor_id", payload.VendorID, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		n.logger.ErrorContext(ctx, "notification rejected",
			"vendor_id", payload.VendorID, "status", resp.StatusCode)
	}
}
