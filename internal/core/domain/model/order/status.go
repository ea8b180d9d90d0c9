package order

import (
	"fmt"

	"servicetrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a service order.
// It implements a state machine that rejects transitions out of terminal
// states and transitions to unrecognized statuses.
//
// Nominal path:
//
//	pending ──> process ──> waiting_approval ──> ready ──> done
//	    │           │               │              │
//	    └───────────┴───────┬───────┴──────────────┘
//	                        v
//	                     cancel
//
// Lateral and backward moves between non-terminal statuses are accepted;
// the workshop regularly sends an order back for rework. Done and Cancel
// are terminal: once reached, no further transition is accepted.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Process indicates the repair work is underway.
	Process

	// WaitingApproval indicates the work is paused for a customer decision.
	WaitingApproval

	// Ready indicates the repaired item awaits pickup.
	Ready

	// Done indicates the order was delivered back to the customer.
	// This is a terminal state with no further transitions allowed.
	Done

	// Cancel indicates the order was abandoned before completion.
	// Reachable from any non-terminal status; terminal once reached.
	Cancel
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "unknown",
		Pending:         "pending",
		Process:         "process",
		WaitingApproval: "waiting_approval",
		Ready:           "ready",
		Done:            "done",
		Cancel:          "cancel",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:         "pending",
		Process:         "process",
		WaitingApproval: "waiting_approval",
		Ready:           "ready",
		Done:            "done",
		Cancel:          "cancel",
	}
}

// StatusFromString parses the persisted status name into a Status.
// Returns an error for names outside the recognized set.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: pending, process, waiting_approval, ready, done, cancel.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Done || s == Cancel
}

// TransitionTo validates the move from the current status to target and
// returns the new status on success.
//
// Rejected transitions:
//   - any move out of a terminal status (done, cancel)
//   - any move to an unrecognized status
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, *errs.InvalidTransitionError) otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	if err := target.Validate(); err != nil {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
