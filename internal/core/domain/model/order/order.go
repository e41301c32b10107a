package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a client's request for a quantity of one material.
// It is the aggregate root that governs the order lifecycle from creation
// through vendor matching and delivery to completion.
//
// Order maintains these invariants:
//   - status is always a member of the recognized status set
//   - quantity is positive
//   - acceptedRequestID is only set by a successful confirm transition
//   - every status change appends a pending history record
type Order struct {
	id                kernel.UUID
	materialID        kernel.UUID
	clientID          kernel.UUID
	deliveryPoint     kernel.GeoPoint
	status            Status
	quantity          int
	acceptedRequestID *kernel.UUID
	comment           string
	isActivated       bool
	deleted           bool

	pendingChanges []StatusChange
	isConstructed  bool
}

// NewOrder creates a new Order in created status with validation.
// The creation itself is recorded as a pending history entry attributed to
// the client.
func NewOrder(
	id, materialID, clientID kernel.UUID,
	deliveryPoint kernel.GeoPoint,
	quantity int,
	comment string,
) (*Order, error) {
	o := &Order{
		status:        StatusCreated,
		comment:       comment,
		isActivated:   true,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setMaterialID(materialID),
		o.setClientID(clientID),
		o.setDeliveryPoint(deliveryPoint),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	o.recordChange(kernel.ActorClient)
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without recording
// history. The stored status must be a member of the recognized set.
func RestoreOrder(
	id, materialID, clientID kernel.UUID,
	deliveryPoint kernel.GeoPoint,
	quantity int,
	status Status,
	acceptedRequestID *kernel.UUID,
	comment string,
	isActivated bool,
	deleted bool,
) (*Order, error) {
	o := &Order{
		acceptedRequestID: acceptedRequestID,
		comment:           comment,
		isActivated:       isActivated,
		deleted:           deleted,
		isConstructed:     true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setMaterialID(materialID),
		o.setClientID(clientID),
		o.setDeliveryPoint(deliveryPoint),
		o.setQuantity(quantity),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// MaterialID returns the identifier of the ordered material.
func (o *Order) MaterialID() kernel.UUID {
	return o.materialID
}

// ClientID returns the identifier of the owning client.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// DeliveryPoint returns the coordinates the material is delivered to.
func (o *Order) DeliveryPoint() kernel.GeoPoint {
	return o.deliveryPoint
}

// Quantity returns the ordered quantity in cubic units.
func (o *Order) Quantity() int {
	return o.quantity
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// AcceptedRequestID returns the confirmed request's ID, or nil before confirmation.
func (o *Order) AcceptedRequestID() *kernel.UUID {
	return o.acceptedRequestID
}

// Comment returns the client's free-text comment.
func (o *Order) Comment() string {
	return o.comment
}

// IsActivated reports whether the order participates in matching.
func (o *Order) IsActivated() bool {
	return o.isActivated
}

// IsDeleted reports whether the order is soft-deleted.
func (o *Order) IsDeleted() bool {
	return o.deleted
}

// PendingChanges returns history entries recorded since the last flush.
// The persistence layer writes them in the same transaction as the order row.
func (o *Order) PendingChanges() []StatusChange {
	return o.pendingChanges
}

// ClearPendingChanges drops recorded history entries after they are persisted.
func (o *Order) ClearPendingChanges() {
	o.pendingChanges = nil
}

// StartVendorSearch moves the order into the matching pool.
//
// Valid transition: created -> vendor_search.
func (o *Order) StartVendorSearch(actor kernel.Actor) error {
	newStatus, err := o.status.TransitionTo(StatusVendorSearch)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.recordChange(actor)
	return nil
}

// ConfirmRequest accepts one vendor offer on behalf of the client:
// the order moves to waiting_commission_payment and remembers the accepted
// request's identifier.
//
// Valid transition: vendor_search -> waiting_commission_payment.
func (o *Order) ConfirmRequest(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(StatusWaitingCommissionPayment)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.acceptedRequestID = &requestID
	o.recordChange(kernel.ActorClient)
	return nil
}

// MarkCommissionPaid records the marketplace commission payment and moves the
// order to document preparation. An accepted request must exist.
//
// Valid transition: waiting_commission_payment -> creating_documents.
func (o *Order) MarkCommissionPaid(actor kernel.Actor) error {
	if o.acceptedRequestID == nil {
		return errs.NewValueIsRequiredError("accepted request")
	}

	newStatus, err := o.status.TransitionTo(StatusCreatingDocuments)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.recordChange(actor)
	return nil
}

// Advance moves the order to its happy-path successor. Used for the transit
// stages between document creation and completion.
func (o *Order) Advance(actor kernel.Actor) error {
	next, err := o.status.Next()
	if err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.recordChange(actor)
	return nil
}

// Cancel transitions the order to cancelled and soft-deletes it.
// Allowed from every non-terminal status; cancelling an already terminal
// order fails with ErrInvalidTransition and records nothing.
func (o *Order) Cancel(actor kernel.Actor) error {
	newStatus, err := o.status.TransitionTo(StatusCancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deleted = true
	o.recordChange(actor)
	return nil
}

// recordChange appends a history entry for the current status.
func (o *Order) recordChange(actor kernel.Actor) {
	o.pendingChanges = append(o.pendingChanges, StatusChange{
		OrderID:   o.id,
		Status:    o.status,
		ChangedBy: actor,
		At:        time.Now().UTC(),
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setMaterialID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.materialID = id
	return nil
}

func (o *Order) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.clientID = id
	return nil
}

func (o *Order) setDeliveryPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	o.deliveryPoint = point
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}
