package assignment

import (
	"errors"
	"fmt"

	"jobshop/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a QC transition is not legal from
// the assignment's current status. Distinct from field validation failures
// so callers can treat it as a state conflict.
var ErrInvalidTransition = errors.New("transition is not allowed from current status")

// Status represents the quality-check lifecycle state of an assignment.
// It implements a state machine with defined transitions to ensure
// assignments follow the correct shop workflow.
//
// State transitions:
//
//	Pending ──> ReadyForQC ──┬──> Accepted
//	                         └──> Rejected
//
// Accepted is terminal. Rejected represents rework: its quantity returns to
// the allocatable pool and re-enters the workflow as a new assignment, never
// by resurrecting the rejected record.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status when work is assigned to a worker.
	Pending

	// ReadyForQC indicates the worker finished and the units await
	// quality inspection.
	ReadyForQC

	// Accepted indicates the units passed inspection. Terminal.
	Accepted

	// Rejected indicates the units failed inspection and go back for
	// rework. The quantity becomes assignable again.
	Rejected
)

// getStatusStrings returns a map of Status values to their wire names.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "UNKNOWN",
		Pending:       "PENDING",
		ReadyForQC:    "READY_FOR_QC",
		Accepted:      "ACCEPTED",
		Rejected:      "REJECTED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		ReadyForQC: "READY_FOR_QC",
		Accepted:   "ACCEPTED",
		Rejected:   "REJECTED",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, ReadyForQC, Accepted, and Rejected.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("PENDING", "READY_FOR_QC",
// "ACCEPTED", "REJECTED"), or "UNKNOWN" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a wire name into a Status.
// Returns an error for anything other than the four valid names.
func StatusFromString(name string) (Status, error) {
	for s, str := range getValidStatusStrings() {
		if str == name {
			return s, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", name))
}

// IsTerminal reports whether no further transitions are legal from s.
// Both Accepted and Rejected are terminal for the record; rework after a
// rejection re-enters the workflow as a new assignment rather than
// transitioning the rejected one further.
func (s Status) IsTerminal() bool {
	return s == Accepted || s == Rejected
}

// MarkReadyForQC transitions the status to ReadyForQC.
//
// Valid transitions:
//   - Pending -> ReadyForQC
//
// Returns:
//   - (ReadyForQC, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) MarkReadyForQC() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: %s is not a valid status to mark ready for QC",
			ErrInvalidTransition, s.String())
	}
	return ReadyForQC, nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - ReadyForQC -> Accepted
//   - Accepted -> Accepted (idempotent; re-accepting is a no-op)
//
// Returns:
//   - (Accepted, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Accept() (Status, error) {
	if s != ReadyForQC && s != Accepted {
		return 0, fmt.Errorf("%w: %s is not a valid status to accept",
			ErrInvalidTransition, s.String())
	}
	return Accepted, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - ReadyForQC -> Rejected
//
// Returns:
//   - (Rejected, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Reject() (Status, error) {
	if s != ReadyForQC {
		return 0, fmt.Errorf("%w: %s is not a valid status to reject",
			ErrInvalidTransition, s.String())
	}
	return Rejected, nil
}
