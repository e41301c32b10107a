package orderrequest

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// MinDistanceKm is the lower clamp applied to route distances. It protects
// downstream per-km pricing from near-zero artifacts.
const MinDistanceKm = 1.0

// ErrOrderRequestIsNotConstructed is returned when an OrderRequest instance
// was not created through the NewOrderRequest or RestoreOrderRequest factory
// methods.
var ErrOrderRequestIsNotConstructed = errors.New(
	"OrderRequest must be created via NewOrderRequest or RestoreOrderRequest constructor")

// OrderRequest represents one vendor-storage's candidate offer against one
// order. The matching engine creates it in created status with route metrics;
// the vendor prices it into an offer; the discount loop and acceptance are
// driven through the status state machine. At most one non-cancelled request
// becomes the order's accepted request.
type OrderRequest struct {
	id              kernel.UUID
	orderID         kernel.UUID
	vendorID        kernel.UUID
	storageID       kernel.UUID
	status          Status
	distanceKm      float64
	durationMinutes int
	materialPrice   int64
	deliveryPrice   int64
	discountPercent *float64
	isDiscounted    bool
	deliveryFrom    *time.Time
	deliveryTo      *time.Time
	shown           bool
	deleted         bool

	pendingChanges []StatusChange
	isConstructed  bool
}

// NewOrderRequest creates a request in created status from matching results.
// The route distance is clamped to MinDistanceKm; the creation is recorded
// as a pending history entry attributed to the system.
func NewOrderRequest(
	id, orderID, vendorID, storageID kernel.UUID,
	distanceKm float64,
	durationMinutes int,
) (*OrderRequest, error) {
	r := &OrderRequest{
		status:        StatusCreated,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setVendorID(vendorID),
		r.setStorageID(storageID),
		r.setDistanceKm(distanceKm),
		r.setDurationMinutes(durationMinutes),
	); err != nil {
		return nil, err
	}

	r.recordChange(kernel.ActorSystem)
	return r, nil
}

// RestoreOrderRequest reconstructs an OrderRequest from persistence without
// recording history. The stored status must be a member of the recognized set.
func RestoreOrderRequest(
	id, orderID, vendorID, storageID kernel.UUID,
	status Status,
	distanceKm float64,
	durationMinutes int,
	materialPrice, deliveryPrice int64,
	discountPercent *float64,
	isDiscounted bool,
	deliveryFrom, deliveryTo *time.Time,
	shown bool,
	deleted bool,
) (*OrderRequest, error) {
	r := &OrderRequest{
		materialPrice:   materialPrice,
		deliveryPrice:   deliveryPrice,
		discountPercent: discountPercent,
		isDiscounted:    isDiscounted,
		deliveryFrom:    deliveryFrom,
		deliveryTo:      deliveryTo,
		shown:           shown,
		deleted:         deleted,
		isConstructed:   true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setVendorID(vendorID),
		r.setStorageID(storageID),
		r.setDistanceKm(distanceKm),
		r.setDurationMinutes(durationMinutes),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	r.status = status
	return r, nil
}

// Validate ensures the OrderRequest instance was properly constructed.
func (r *OrderRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrOrderRequestIsNotConstructed
	}
	return nil
}

// ID returns the request's unique identifier.
func (r *OrderRequest) ID() kernel.UUID {
	return r.id
}

// OrderID returns the identifier of the matched order.
func (r *OrderRequest) OrderID() kernel.UUID {
	return r.orderID
}

// VendorID returns the identifier of the owning vendor.
func (r *OrderRequest) VendorID() kernel.UUID {
	return r.vendorID
}

// StorageID returns the identifier of the vendor storage.
func (r *OrderRequest) StorageID() kernel.UUID {
	return r.storageID
}

// Status returns the current lifecycle status.
func (r *OrderRequest) Status() Status {
	return r.status
}

// DistanceKm returns the route distance in kilometers, never below MinDistanceKm.
func (r *OrderRequest) DistanceKm() float64 {
	return r.distanceKm
}

// DurationMinutes returns the route duration in minutes.
func (r *OrderRequest) DurationMinutes() int {
	return r.durationMinutes
}

// MaterialPrice returns the material price in minor currency units.
// Zero until the vendor makes an offer.
func (r *OrderRequest) MaterialPrice() int64 {
	return r.materialPrice
}

// DeliveryPrice returns the delivery price in minor currency units.
// Zero until the vendor makes an offer.
func (r *OrderRequest) DeliveryPrice() int64 {
	return r.deliveryPrice
}

// DiscountPercent returns the granted discount percent, or nil when none.
func (r *OrderRequest) DiscountPercent() *float64 {
	return r.discountPercent
}

// IsDiscounted reports whether a discount is currently applied.
func (r *OrderRequest) IsDiscounted() bool {
	return r.isDiscounted
}

// DeliveryWindow returns the agreed delivery window bounds; either may be nil.
func (r *OrderRequest) DeliveryWindow() (*time.Time, *time.Time) {
	return r.deliveryFrom, r.deliveryTo
}

// IsShown reports whether the vendor has seen the request.
func (r *OrderRequest) IsShown() bool {
	return r.shown
}

// IsDeleted reports whether the request is soft-deleted.
func (r *OrderRequest) IsDeleted() bool {
	return r.deleted
}

// PendingChanges returns history entries recorded since the last flush.
// The persistence layer writes them in the same transaction as the request row.
func (r *OrderRequest) PendingChanges() []StatusChange {
	return r.pendingChanges
}

// ClearPendingChanges drops recorded history entries after they are persisted.
func (r *OrderRequest) ClearPendingChanges() {
	r.pendingChanges = nil
}

// MarkShown flags the request as seen by the vendor. Not a status change, so
// no history entry is recorded.
func (r *OrderRequest) MarkShown() {
	r.shown = true
}

// SetDeliveryWindow records the agreed delivery time window.
func (r *OrderRequest) SetDeliveryWindow(from, to time.Time) error {
	if !to.After(from) {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery window is invalid", fmt.Errorf("%s is not after %s", to, from))
	}
	r.deliveryFrom = &from
	r.deliveryTo = &to
	return nil
}

// MakeOffer prices the request and presents it to the client.
// The shown flag is cleared so the vendor's list reflects the pending answer.
//
// Valid transitions: created -> waiting_client_response and the re-offer
// self-loop waiting_client_response -> waiting_client_response.
func (r *OrderRequest) MakeOffer(materialPrice, deliveryPrice int64) error {
	if materialPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"material price is invalid", fmt.Errorf("%d is not greater than 0", materialPrice))
	}
	if deliveryPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery price is invalid", fmt.Errorf("%d is not greater than 0", deliveryPrice))
	}

	newStatus, err := r.status.TransitionTo(StatusWaitingClientResponse)
	if err != nil {
		return err
	}

	r.status = newStatus
	r.materialPrice = materialPrice
	r.deliveryPrice = deliveryPrice
	r.shown = false
	r.recordChange(kernel.ActorVendor)
	return nil
}

// RequestDiscount records the client's wish for a discount.
//
// Valid transition: waiting_client_response -> client_want_discount.
func (r *OrderRequest) RequestDiscount() error {
	newStatus, err := r.status.TransitionTo(StatusClientWantDiscount)
	if err != nil {
		return err
	}

	r.status = newStatus
	r.recordChange(kernel.ActorClient)
	return nil
}

// GiveDiscount applies the vendor's discounted prices and returns the request
// to the client for a decision.
//
// Valid transitions: client_want_discount -> waiting_client_response and the
// proactive-discount self-loop on waiting_client_response.
func (r *OrderRequest) GiveDiscount(percent float64, materialPrice, deliveryPrice int64) error {
	newStatus, err := r.status.TransitionTo(StatusWaitingClientResponse)
	if err != nil {
		return err
	}

	r.status = newStatus
	r.materialPrice = materialPrice
	r.deliveryPrice = deliveryPrice
	r.discountPercent = &percent
	r.isDiscounted = true
	r.recordChange(kernel.ActorVendor)
	return nil
}

// DeclineDiscount refuses the client's discount request without changing
// prices and returns the request to waiting_client_response.
func (r *OrderRequest) DeclineDiscount() error {
	newStatus, err := r.status.TransitionTo(StatusWaitingClientResponse)
	if err != nil {
		return err
	}

	r.status = newStatus
	r.isDiscounted = false
	r.recordChange(kernel.ActorVendor)
	return nil
}

// Advance moves the request to its happy-path successor. Used when the client
// confirms the offer and when the order progresses through payment.
func (r *OrderRequest) Advance(actor kernel.Actor) error {
	next, err := r.status.Next()
	if err != nil {
		return err
	}

	newStatus, err := r.status.TransitionTo(next)
	if err != nil {
		return err
	}

	r.status = newStatus
	r.recordChange(actor)
	return nil
}

// Cancel transitions the request to cancelled and soft-deletes it.
// Cancelling an already terminal request fails with ErrInvalidTransition and
// records nothing, which keeps cancellation idempotent at the history level.
func (r *OrderRequest) Cancel(actor kernel.Actor) error {
	newStatus, err := r.status.TransitionTo(StatusCancelled)
	if err != nil {
		return err
	}

	r.status = newStatus
	r.deleted = true
	r.recordChange(actor)
	return nil
}

// recordChange appends a history entry for the current status.
func (r *OrderRequest) recordChange(actor kernel.Actor) {
	r.pendingChanges = append(r.pendingChanges, StatusChange{
		RequestID: r.id,
		Status:    r.status,
		ChangedBy: actor,
		At:        time.Now().UTC(),
	})
}

func (r *OrderRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *OrderRequest) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.orderID = id
	return nil
}

func (r *OrderRequest) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.vendorID = id
	return nil
}

func (r *OrderRequest) setStorageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.storageID = id
	return nil
}

func (r *OrderRequest) setDistanceKm(distanceKm float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"distance is invalid", fmt.Errorf("%g is negative", distanceKm))
	}
	if distanceKm < MinDistanceKm {
		distanceKm = MinDistanceKm
	}
	r.distanceKm = distanceKm
	return nil
}

func (r *OrderRequest) setDurationMinutes(durationMinutes int) error {
	if durationMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"duration is invalid", fmt.Errorf("%d is negative", durationMinutes))
	}
	r.durationMinutes = durationMinutes
	return nil
}
