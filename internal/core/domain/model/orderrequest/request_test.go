package orderrequest_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/orderrequest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCreatedRequest(t *testing.T) *orderrequest.OrderRequest {
	t.Helper()

	request, err := orderrequest.NewOrderRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 12.5, 18)
	require.NoError(t, err)
	return request
}

func TestNewOrderRequest(t *testing.T) {
	t.Run("should create request in created status with system history entry", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()

		request, err := orderrequest.NewOrderRequest(
			id, orderID, kernel.NewUUID(), kernel.NewUUID(), 12.5, 18)

		require.NoError(t, err)
		require.NoError(t, request.Validate())
		assert.True(t, request.ID().IsEqual(id))
		assert.True(t, request.OrderID().IsEqual(orderID))
		assert.Equal(t, orderrequest.StatusCreated, request.Status())
		assert.InDelta(t, 12.5, request.DistanceKm(), 1e-9)
		assert.Equal(t, 18, request.DurationMinutes())
		assert.Zero(t, request.MaterialPrice())
		assert.Zero(t, request.DeliveryPrice())
		assert.False(t, request.IsShown())
		assert.False(t, request.IsDeleted())

		changes := request.PendingChanges()
		require.Len(t, changes, 1)
		assert.Equal(t, orderrequest.StatusCreated, changes[0].Status)
		assert.Equal(t, kernel.ActorSystem, changes[0].ChangedBy)
	})

	t.Run("should clamp short routes to the minimum distance", func(t *testing.T) {
		request, err := orderrequest.NewOrderRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0.3, 2)

		require.NoError(t, err)
		assert.InDelta(t, orderrequest.MinDistanceKm, request.DistanceKm(), 1e-9)
	})

	t.Run("should reject a negative distance", func(t *testing.T) {
		request, err := orderrequest.NewOrderRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), -1, 2)

		require.Error(t, err)
		assert.Nil(t, request)
		assert.Contains(t, err.Error(), "distance is invalid")
	})

	t.Run("should reject a negative duration", func(t *testing.T) {
		request, err := orderrequest.NewOrderRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 5, -10)

		require.Error(t, err)
		assert.Nil(t, request)
		assert.Contains(t, err.Error(), "duration is invalid")
	})
}

func TestRestoreOrderRequest(t *testing.T) {
	t.Run("should restore without recording history", func(t *testing.T) {
		percent := 15.0
		from := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
		to := from.Add(4 * time.Hour)

		request, err := orderrequest.RestoreOrderRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			orderrequest.StatusInProgress, 9, 14, 850, 320, &percent, true,
			&from, &to, true, false)

		require.NoError(t, err)
		assert.Equal(t, orderrequest.StatusInProgress, request.Status())
		assert.Equal(t, int64(850), request.MaterialPrice())
		assert.True(t, request.IsDiscounted())
		assert.True(t, request.IsShown())
		assert.Empty(t, request.PendingChanges())

		gotFrom, gotTo := request.DeliveryWindow()
		require.NotNil(t, gotFrom)
		require.NotNil(t, gotTo)
		assert.True(t, gotFrom.Equal(from))
		assert.True(t, gotTo.Equal(to))
	})

	t.Run("should reject unrecognized stored status", func(t *testing.T) {
		request, err := orderrequest.RestoreOrderRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			orderrequest.Status(99), 9, 14, 0, 0, nil, false, nil, nil, false, false)

		require.Error(t, err)
		assert.Nil(t, request)
		assert.ErrorIs(t, err, orderrequest.ErrUnknownStatus)
	})
}

func TestOrderRequest_MakeOffer(t *testing.T) {
	t.Run("should price the request and present it to the client", func(t *testing.T) {
		request := newCreatedRequest(t)
		request.MarkShown()
		request.ClearPendingChanges()

		require.NoError(t, request.MakeOffer(1500, 600))

		assert.Equal(t, orderrequest.StatusWaitingClientResponse, request.Status())
		assert.Equal(t, int64(1500), request.MaterialPrice())
		assert.Equal(t, int64(600), request.DeliveryPrice())
		// A new offer resets the shown flag so the vendor sees the answer state.
		assert.False(t, request.IsShown())

		changes := request.PendingChanges()
		require.Len(t, changes, 1)
		assert.Equal(t, kernel.ActorVendor, changes[0].ChangedBy)
	})

	t.Run("should allow a re-offer while waiting for the client", func(t *testing.T) {
		request := newCreatedRequest(t)
		require.NoError(t, request.MakeOffer(1500, 600))

		require.NoError(t, request.MakeOffer(1400, 550))

		assert.Equal(t, orderrequest.StatusWaitingClientResponse, request.Status())
		assert.Equal(t, int64(1400), request.MaterialPrice())
	})

	t.Run("should reject non-positive prices", func(t *testing.T) {
		request := newCreatedRequest(t)

		require.Error(t, request.MakeOffer(0, 600))
		require.Error(t, request.MakeOffer(1500, -1))
		assert.Equal(t, orderrequest.StatusCreated, request.Status())
	})

	t.Run("should reject an offer on a cancelled request", func(t *testing.T) {
		request := newCreatedRequest(t)
		require.NoError(t, request.Cancel(kernel.ActorVendor))

		err := request.MakeOffer(1500, 600)

		require.Error(t, err)
		assert.ErrorIs(t, err, orderrequest.ErrInvalidTransition)
	})
}

func TestOrderRequest_DiscountLoop(t *testing.T) {
	newOffered := func(t *testing.T) *orderrequest.OrderRequest {
		t.Helper()
		request := newCreatedRequest(t)
		require.NoError(t, request.MakeOffer(1000, 500))
		request.ClearPendingChanges()
		return request
	}

	t.Run("should record the client's discount wish", func(t *testing.T) {
		request := newOffered(t)

		require.NoError(t, request.RequestDiscount())

		assert.Equal(t, orderrequest.StatusClientWantDiscount, request.Status())
		require.Len(t, request.PendingChanges(), 1)
		assert.Equal(t, kernel.ActorClient, request.PendingChanges()[0].ChangedBy)
	})

	t.Run("should apply the vendor's discounted prices", func(t *testing.T) {
		request := newOffered(t)
		require.NoError(t, request.RequestDiscount())

		require.NoError(t, request.GiveDiscount(10, 945, 405))

		assert.Equal(t, orderrequest.StatusWaitingClientResponse, request.Status())
		assert.Equal(t, int64(945), request.MaterialPrice())
		assert.Equal(t, int64(405), request.DeliveryPrice())
		assert.True(t, request.IsDiscounted())
		require.NotNil(t, request.DiscountPercent())
		assert.InDelta(t, 10.0, *request.DiscountPercent(), 1e-9)
	})

	t.Run("should allow a proactive discount without a client request", func(t *testing.T) {
		request := newOffered(t)

		require.NoError(t, request.GiveDiscount(5, 950, 475))

		assert.Equal(t, orderrequest.StatusWaitingClientResponse, request.Status())
		assert.True(t, request.IsDiscounted())
	})

	t.Run("should keep prices when the vendor declines", func(t *testing.T) {
		request := newOffered(t)
		require.NoError(t, request.RequestDiscount())

		require.NoError(t, request.DeclineDiscount())

		assert.Equal(t, orderrequest.StatusWaitingClientResponse, request.Status())
		assert.Equal(t, int64(1000), request.MaterialPrice())
		assert.Equal(t, int64(500), request.DeliveryPrice())
		assert.False(t, request.IsDiscounted())
	})

	t.Run("should reject a discount request before any offer", func(t *testing.T) {
		request := newCreatedRequest(t)

		err := request.RequestDiscount()

		require.Error(t, err)
		assert.ErrorIs(t, err, orderrequest.ErrInvalidTransition)
	})
}

func TestOrderRequest_Advance(t *testing.T) {
	t.Run("should walk acceptance through to completed", func(t *testing.T) {
		request := newCreatedRequest(t)
		require.NoError(t, request.MakeOffer(1000, 500))

		require.NoError(t, request.Advance(kernel.ActorClient)) // accepted
		assert.Equal(t, orderrequest.StatusInProgress, request.Status())

		require.NoError(t, request.Advance(kernel.ActorClient)) // commission paid
		assert.Equal(t, orderrequest.StatusWaitingDocuments, request.Status())

		require.NoError(t, request.Advance(kernel.ActorVendor)) // documents done
		assert.Equal(t, orderrequest.StatusCompleted, request.Status())

		require.Error(t, request.Advance(kernel.ActorVendor))
	})
}

func TestOrderRequest_Cancel(t *testing.T) {
	t.Run("should soft-delete and record the actor", func(t *testing.T) {
		request := newCreatedRequest(t)
		request.ClearPendingChanges()

		require.NoError(t, request.Cancel(kernel.ActorVendor))

		assert.Equal(t, orderrequest.StatusCancelled, request.Status())
		assert.True(t, request.IsDeleted())
		require.Len(t, request.PendingChanges(), 1)
		assert.Equal(t, kernel.ActorVendor, request.PendingChanges()[0].ChangedBy)
	})

	t.Run("should reject cancelling twice and record nothing", func(t *testing.T) {
		request := newCreatedRequest(t)
		require.NoError(t, request.Cancel(kernel.ActorVendor))
		request.ClearPendingChanges()

		err := request.Cancel(kernel.ActorVendor)

		require.Error(t, err)
		assert.ErrorIs(t, err, orderrequest.ErrInvalidTransition)
		assert.Empty(t, request.PendingChanges())
	})
}

func TestOrderRequest_MarkShown(t *testing.T) {
	request := newCreatedRequest(t)
	request.ClearPendingChanges()

	request.MarkShown()

	assert.True(t, request.IsShown())
	// Bookkeeping, not a lifecycle change.
	assert.Empty(t, request.PendingChanges())
}

func TestOrderRequest_SetDeliveryWindow(t *testing.T) {
	t.Run("should store a valid window", func(t *testing.T) {
		request := newCreatedRequest(t)
		from := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
		to := from.Add(3 * time.Hour)

		require.NoError(t, request.SetDeliveryWindow(from, to))

		gotFrom, gotTo := request.DeliveryWindow()
		require.NotNil(t, gotFrom)
		require.NotNil(t, gotTo)
		assert.True(t, gotFrom.Equal(from))
		assert.True(t, gotTo.Equal(to))
	})

	t.Run("should reject an inverted or empty window", func(t *testing.T) {
		request := newCreatedRequest(t)
		from := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

		require.Error(t, request.SetDeliveryWindow(from, from))
		require.Error(t, request.SetDeliveryWindow(from, from.Add(-time.Hour)))

		gotFrom, gotTo := request.DeliveryWindow()
		assert.Nil(t, gotFrom)
		assert.Nil(t, gotTo)
	})
}

func TestOrderRequest_Validate(t *testing.T) {
	t.Run("should fail validation for nil request", func(t *testing.T) {
		var request *orderrequest.OrderRequest
		assert.Equal(t, orderrequest.ErrOrderRequestIsNotConstructed, request.Validate())
	})

	t.Run("should fail validation for zero value request", func(t *testing.T) {
		var request orderrequest.OrderRequest
		assert.Equal(t, orderrequest.ErrOrderRequestIsNotConstructed, request.Validate())
	})
}
