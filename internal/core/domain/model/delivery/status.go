package delivery

import (
	"swiftdrop/internal/pkg/errs"
)

// Status is the open, string-valued delivery lifecycle label.
//
// Only two values carry engine semantics:
//   - StatusAwaitingRider: the initial state; unclaimed deliveries in this
//     state appear in the available-deliveries listing.
//   - StatusDelivered: the terminal state; reporting it frees the rider.
//
// Every other non-empty label is a legal in-progress state. The set is kept
// open on purpose: callers own the vocabulary of intermediate steps, and the
// engine's real invariant is the status↔availability coupling, not a
// transition graph.
type Status string

const (
	// StatusAwaitingRider is the canonical initial state of a new delivery.
	StatusAwaitingRider Status = "AWAITING_RIDER"
	// StatusDelivered is the terminal state that releases the assigned rider.
	StatusDelivered Status = "DELIVERED"
)

// ErrStatusIsRequired is returned when a status label is empty.
var ErrStatusIsRequired = errs.NewValueIsRequiredError("status")

// NewStatus validates and wraps a caller-supplied status label.
func NewStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate only requires the label to be non-empty; any label is otherwise legal.
func (s Status) Validate() error {
	if s == "" {
		return ErrStatusIsRequired
	}
	return nil
}

// IsAwaitingRider reports whether this is the initial unclaimed state.
func (s Status) IsAwaitingRider() bool {
	return s == StatusAwaitingRider
}

// IsDelivered reports whether this is the terminal state.
func (s Status) IsDelivered() bool {
	return s == StatusDelivered
}

// IsInProgress reports whether the label is an intermediate working state,
// i.e. neither the initial nor the terminal one.
func (s Status) IsInProgress() bool {
	return s != "" && !s.IsAwaitingRider() && !s.IsDelivered()
}

// String returns the label's string form.
func (s Status) String() string {
	return string(s)
}
