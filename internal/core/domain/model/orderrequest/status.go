package orderrequest

import (
	"errors"
	"fmt"
	"slices"
)

// Status represents the lifecycle state of a vendor's response to an order.
//
// Happy path:
//
//	created -> waiting_client_response -> in_progress -> waiting_documents -> completed
//
// waiting_client_response permits a self-transition (a vendor may re-offer),
// and client_want_discount loops back to waiting_client_response once the
// vendor answers the discount request. Cancellation is allowed from every
// non-terminal state. completed and cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status stamped by the matching engine.
	StatusCreated

	// StatusWaitingClientResponse indicates the vendor made an offer and the
	// client has not reacted yet.
	StatusWaitingClientResponse

	// StatusClientWantDiscount indicates the client asked for a discount and
	// the vendor has not answered yet.
	StatusClientWantDiscount

	// StatusInProgress indicates the client accepted the offer.
	StatusInProgress

	// StatusWaitingDocuments indicates commission is paid and shipping
	// documents are being prepared.
	StatusWaitingDocuments

	// StatusCompleted indicates the request finished successfully. Terminal.
	StatusCompleted

	// StatusCancelled indicates the request was cancelled. Terminal.
	StatusCancelled
)

var (
	// ErrUnknownStatus is returned when a status value is outside the
	// recognized set, or when the happy path defines no successor.
	ErrUnknownStatus = errors.New("unknown order request status")

	// ErrInvalidTransition is returned when a status change is semantically
	// disallowed by the state machine.
	ErrInvalidTransition = errors.New("invalid order request status transition")
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:               "unknown",
		StatusCreated:               "created",
		StatusWaitingClientResponse: "waiting_client_response",
		StatusClientWantDiscount:    "client_want_discount",
		StatusInProgress:            "in_progress",
		StatusWaitingDocuments:      "waiting_documents",
		StatusCompleted:             "completed",
		StatusCancelled:             "cancelled",
	}
}

// getPossibleNext returns the immutable transition table.
func getPossibleNext() map[Status][]Status {
	return map[Status][]Status{
		StatusCreated: {StatusWaitingClientResponse, StatusCancelled},
		StatusWaitingClientResponse: {
			StatusWaitingClientResponse,
			StatusClientWantDiscount,
			StatusInProgress,
			StatusCancelled,
		},
		StatusClientWantDiscount: {StatusWaitingClientResponse, StatusCancelled},
		StatusInProgress:         {StatusWaitingDocuments, StatusCancelled},
		StatusWaitingDocuments:   {StatusCompleted, StatusCancelled},
		StatusCompleted:          {},
		StatusCancelled:          {},
	}
}

// getHappyPathNext returns the single happy-path successor for each
// non-terminal status. Note that client_want_discount loops back to
// waiting_client_response rather than progressing forward.
func getHappyPathNext() map[Status]Status {
	return map[Status]Status{
		StatusCreated:               StatusWaitingClientResponse,
		StatusWaitingClientResponse: StatusInProgress,
		StatusClientWantDiscount:    StatusWaitingClientResponse,
		StatusInProgress:            StatusWaitingDocuments,
		StatusWaitingDocuments:      StatusCompleted,
	}
}

// ClientAcceptableStatuses returns the statuses from which a client may
// accept the vendor's offer.
func ClientAcceptableStatuses() []Status {
	return []Status{StatusWaitingClientResponse, StatusClientWantDiscount}
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

// PossibleNext returns the set of statuses the request may transition to
// from the current one. Fails with ErrUnknownStatus for unrecognized values.
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
