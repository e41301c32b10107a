package notify_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/internal/adapters/out/notify"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type capturedNotification struct {
	VendorID  string `json:"vendor_id"`
	StorageID string `json:"storage_id"`
	Orders    []struct {
		OrderID    string  `json:"order_id"`
		DistanceKm float64 `json:"distance_km"`
	} `json:"orders"`
}

func TestWebhookNotifier_NotifyVendor(t *testing.T) {
	t.Run("should deliver the notification asynchronously", func(t *testing.T) {
		received := make(chan capturedNotification, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var payload capturedNotification
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			received <- payload
		}))
		defer server.Close()

		notifier := notify.NewWebhookNotifier(server.URL, discardLogger())
		vendorID := kernel.NewUUID()
		storageID := kernel.NewUUID()
		orderID := kernel.NewUUID()

		notifier.NotifyVendor(context.Background(), vendorID, storageID,
			map[kernel.UUID]float64{orderID: 12.4})

		select {
		case payload := <-received:
			assert.Equal(t, vendorID.String(), payload.VendorID)
			assert.Equal(t, storageID.String(), payload.StorageID)
			require.Len(t, payload.Orders, 1)
			assert.Equal(t, orderID.String(), payload.Orders[0].OrderID)
			assert.InDelta(t, 12.4, payload.Orders[0].DistanceKm, 1e-9)
		case <-time.After(5 * time.Second):
			t.Fatal("notification was never delivered")
		}
	})

	t.Run("should skip delivery when there are no matches", func(t *testing.T) {
		called := make(chan struct{}, 1)
		server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			called <- struct{}{}
		}))
		defer server.Close()

		notifier := notify.NewWebhookNotifier(server.URL, discardLogger())

		notifier.NotifyVendor(context.Background(), kernel.NewUUID(), kernel.NewUUID(), nil)

		select {
		case <-called:
			t.Fatal("empty notification should not be delivered")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("should swallow delivery failures", func(t *testing.T) {
		received := make(chan struct{}, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			received <- struct{}{}
		}))
		defer server.Close()

		notifier := notify.NewWebhookNotifier(server.URL, discardLogger())

		// The call itself must not block or panic on a failing endpoint.
		notifier.NotifyVendor(context.Background(), kernel.NewUUID(), kernel.NewUUID(),
			map[kernel.UUID]float64{kernel.NewUUID(): 3.0})

		select {
		case <-received:
		case <-time.After(5 * time.Second):
			t.Fatal("notification was never attempted")
		}
	})
}
