package order

import (
	"errors"
	"fmt"
	"slices"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// Happy path:
//
//	created -> vendor_search -> waiting_commission_payment -> creating_documents
//	        -> loading -> on_the_way -> waiting_to_receive -> waiting_full_payment
//	        -> completed
//
// Every non-terminal state additionally permits a transition to cancelled.
// completed and cancelled are terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status when a client finishes building an order.
	StatusCreated

	// StatusVendorSearch indicates the order is in the matching pool awaiting offers.
	StatusVendorSearch

	// StatusWaitingCommissionPayment indicates the client accepted an offer and
	// the marketplace commission payment is pending.
	StatusWaitingCommissionPayment

	// StatusCreatingDocuments indicates commission is paid and shipping
	// documents are being prepared.
	StatusCreatingDocuments

	// StatusLoading indicates the material is being loaded at the storage.
	StatusLoading

	// StatusOnTheWay indicates the material is in transit.
	StatusOnTheWay

	// StatusWaitingToReceive indicates delivery arrived and awaits acceptance.
	StatusWaitingToReceive

	// StatusWaitingFullPayment indicates the client accepted delivery and the
	// remaining payment is pending.
	StatusWaitingFullPayment

	// StatusCompleted indicates the order finished successfully. Terminal.
	StatusCompleted

	// StatusCancelled indicates the order was cancelled. Terminal.
	StatusCancelled
)

var (
	// ErrUnknownStatus is returned when a status value is outside the
	// recognized set, or when the happy path defines no successor.
	ErrUnknownStatus = errors.New("unknown order status")

	// ErrInvalidTransition is returned when a status change is semantically
	// disallowed by the state machine.
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:                  "unknown",
		StatusCreated:                  "created",
		StatusVendorSearch:             "vendor_search",
		StatusWaitingCommissionPayment: "waiting_commission_payment",
		StatusCreatingDocuments:        "creating_documents",
		StatusLoading:                  "loading",
		StatusOnTheWay:                 "on_the_way",
		StatusWaitingToReceive:         "waiting_to_receive",
		StatusWaitingFullPayment:       "waiting_full_payment",
		StatusCompleted:                "completed",
		StatusCancelled:                "cancelled",
	}
}

// getPossibleNext returns the immutable transition table: for every
// recognized status, the set of allowed target statuses. Terminal statuses
// map to an empty set.
func getPossibleNext() map[Status][]Status {
	return map[Status][]Status{
		StatusCreated:                  {StatusVendorSearch, StatusCancelled},
		StatusVendorSearch:             {StatusWaitingCommissionPayment, StatusCancelled},
		StatusWaitingCommissionPayment: {StatusCreatingDocuments, StatusCancelled},
		StatusCreatingDocuments:        {StatusLoading, StatusCancelled},
		StatusLoading:                  {StatusOnTheWay, StatusCancelled},
		StatusOnTheWay:                 {StatusWaitingToReceive, StatusCancelled},
		StatusWaitingToReceive:         {StatusWaitingFullPayment, StatusCancelled},
		StatusWaitingFullPayment:       {StatusCompleted, StatusCancelled},
		StatusCompleted:                {},
		StatusCancelled:                {},
	}
}

// getHappyPathNext returns the single happy-path successor for each
// non-terminal status.
func getHappyPathNext() map[Status]Status {
	return map[Status]Status{
		StatusCreated:                  StatusVendorSearch,
		StatusVendorSearch:             StatusWaitingCommissionPayment,
		StatusWaitingCommissionPayment: StatusCreatingDocuments,
		StatusCreatingDocuments:        StatusLoading,
		StatusLoading:                  StatusOnTheWay,
		StatusOnTheWay:                 StatusWaitingToReceive,
		StatusWaitingToReceive:         StatusWaitingFullPayment,
		StatusWaitingFullPayment:       StatusCompleted,
	}
}

// ActiveStatuses returns the statuses in which an order participates in
// vendor matching.
func ActiveStatuses() []Status {
	return []Status{StatusCreated, StatusVendorSearch}
}

// TransitStatuses returns the statuses between offer confirmation and
// completion.
func TransitStatuses() []Status {
	return []Status{
		StatusCreatingDocuments,
		StatusLoading,
		StatusOnTheWay,
		StatusWaitingToReceive,
		StatusWaitingFullPayment,
	}
}

// ArchivedStatuses returns the statuses shown in the client's archive.
func ArchivedStatuses() []Status {
	return []Status{StatusCompleted}
}

// StatusFromString parses a status from its snake_case string representation.
// Used at persistence and API boundaries; fails with ErrUnknownStatus for
// unrecognized input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Validate checks if the Status value is a member of the recognized set.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getPossibleNext()[s]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownStatus, s)
	}
	return nil
}

// String returns the snake_case name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transitions are allowed out of the status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// PossibleNext returns the set of statuses the order may transition to from
// the current one. Fails with ErrUnknownStatus for unrecognized values;
// terminal statuses yield an empty set.
func (s Status) PossibleNext() ([]Status, error) {
	next, ok := getPossibleNext()[s]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, s)
	}
	return slices.Clone(next), nil
}

// Next returns the single happy-path successor of the status.
// Fails with ErrUnknownStatus when no successor is defined, which covers
// both terminal and unrecognized statuses.
func (s Status) Next() (Status, error) {
	next, ok := getHappyPathNext()[s]
	if !ok {
		return StatusUnknown, fmt.Errorf("%w: no happy-path successor for %s", ErrUnknownStatus, s)
	}
	return next, nil
}

// TransitionTo verifies that target is an allowed transition from the
// current status and returns it. Fails with ErrInvalidTransition otherwise.
//
// Example:
//
//	newStatus, err := current.TransitionTo(order.StatusCancelled)
//	if err != nil {
//	    // transition is not allowed
//	}
func (s Status) TransitionTo(target Status) (Status, error) {
	possible, err := s.PossibleNext()
	if err != nil {
		return StatusUnknown, err
	}

	if !slices.Contains(possible, target) {
		return StatusUnknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}

	return target, nil
}
