package order

import (
	"errors"
	"time"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/pkg/errs"
)

// ErrStatusEventIsNotConstructed is returned when a StatusEvent was not
// created through the NewStatusEvent factory method.
var ErrStatusEventIsNotConstructed = errors.New("StatusEvent must be created via NewStatusEvent constructor")

// StatusEvent is one immutable entry of an order's status log: which status
// was applied, by whom, when, and an optional free-text note.
//
// Events are append-only; the log's append order is the read order. The last
// event's status always equals the order's current status.
type StatusEvent struct {
	// status is the status the order moved to
	status Status

	// note is an optional remark recorded with the transition
	note string

	// updatedBy is the principal that performed the transition
	updatedBy kernel.UUID

	// updatedAt is the transition wall-clock time
	updatedAt time.Time

	// isConstructed ensures the event was created via NewStatusEvent
	isConstructed bool
}

// NewStatusEvent creates a validated StatusEvent.
//
// Parameters:
//   - status: The status the order moved to (must be valid)
//   - note: Optional free text recorded with the transition
//   - updatedBy: The acting principal's id (must be a valid UUID)
//   - updatedAt: The transition time (must not be zero)
func NewStatusEvent(status Status, note string, updatedBy kernel.UUID, updatedAt time.Time) (StatusEvent, error) {
	if err := status.Validate(); err != nil {
		return StatusEvent{}, err
	}
	if err := updatedBy.Validate(); err != nil {
		return StatusEvent{}, err
	}
	if updatedAt.IsZero() {
		return StatusEvent{}, errs.NewValueIsRequiredError("updatedAt")
	}

	return StatusEvent{
		status:        status,
		note:          note,
		updatedBy:     updatedBy,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the StatusEvent was properly constructed through NewStatusEvent.
func (e StatusEvent) Validate() error {
	if !e.isConstructed {
		return ErrStatusEventIsNotConstructed
	}
	return nil
}

// Status returns the status the order moved to.
func (e StatusEvent) Status() Status {
	return e.status
}

// Note returns the remark recorded with the transition.
func (e StatusEvent) Note() string {
	return e.note
}

// UpdatedBy returns the id of the principal that performed the transition.
func (e StatusEvent) UpdatedBy() kernel.UUID {
	return e.updatedBy
}

// UpdatedAt returns the transition time.
func (e StatusEvent) UpdatedAt() time.Time {
	return e.updatedAt
}
