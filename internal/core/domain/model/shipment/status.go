package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment note.
// It implements a state machine with defined transitions so that status
// changes go through explicit methods instead of raw field writes.
//
// State transitions:
//
//	StatusInProgress ──┬──> StatusCompleted ──> StatusReturned
//	                   ├──> StatusFailed ─────> StatusCancelled
//	                   └──> StatusCancelled
//
// StatusCancelled is a final state. StatusCompleted permits only the StatusReturned
// transition, so no further carrier action is possible once a shipment
// is completed or cancelled.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusInProgress is the initial status of a shipment note that has been
	// handed to a carrier and not yet delivered.
	StatusInProgress

	// StatusCompleted indicates the carrier delivered the shipment.
	StatusCompleted

	// StatusReturned indicates a delivered shipment came back to the shipper.
	StatusReturned

	// StatusCancelled indicates the shipment was cancelled. Final state.
	StatusCancelled

	// StatusFailed indicates the carrier could not complete the shipment.
	StatusFailed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusInProgress: "In progress",
		StatusCompleted:  "Completed",
		StatusReturned:   "Returned",
		StatusCancelled:  "Cancelled",
		StatusFailed:     "Failed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusInProgress: "In progress",
		StatusCompleted:  "Completed",
		StatusReturned:   "Returned",
		StatusCancelled:  "Cancelled",
		StatusFailed:     "Failed",
	}
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any value outside the declared set are invalid.
// Used to vet Status values arriving from external sources such as the
// database before they enter the domain.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value;
// invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no carrier action may follow this status.
// StatusCompleted and StatusCancelled shipments must not be acted on again.
func (s Status) IsFinal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Cancel transitions the status to StatusCancelled.
//
// Valid transitions:
//   - StatusInProgress -> StatusCancelled
//   - StatusFailed -> StatusCancelled
//
// Invalid transitions:
//   - StatusCompleted -> StatusCancelled (delivered shipments cannot be cancelled)
//   - StatusReturned -> StatusCancelled
//   - StatusCancelled -> StatusCancelled (already cancelled)
//
// Returns (StatusCancelled, nil) on a valid transition and (0, error) otherwise.
// Rejecting StatusCancelled -> StatusCancelled makes concurrent cancellation requests
// for the same shipment resolve to exactly one effective cancellation.
func (s Status) Cancel() (Status, error) {
	if s != StatusInProgress && s != StatusFailed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return StatusCancelled, nil
}

// Complete transitions the status to StatusCompleted.
//
// Valid transitions:
//   - StatusInProgress -> StatusCompleted
//
// Returns (StatusCompleted, nil) on a valid transition and (0, error) otherwise.
func (s Status) Complete() (Status, error) {
	if s != StatusInProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return StatusCompleted, nil
}

// Fail transitions the status to StatusFailed.
//
// Valid transitions:
//   - StatusInProgress -> StatusFailed
//
// Returns (StatusFailed, nil) on a valid transition and (0, error) otherwise.
func (s Status) Fail() (Status, error) {
	if s != StatusInProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fail", s.String()),
		)
	}

	return StatusFailed, nil
}

// Return transitions the status to StatusReturned.
//
// Valid transitions:
//   - StatusCompleted -> StatusReturned (delivered shipment came back)
//
// Returns (StatusReturned, nil) on a valid transition and (0, error) otherwise.
func (s Status) Return() (Status, error) {
	if s != StatusCompleted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to return", s.String()),
		)
	}

	return StatusReturned, nil
}
