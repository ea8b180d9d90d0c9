// Package audit provides the domain model for the append-only audit trail.
// Every mutating action in the system produces exactly one Entry describing
// the actor, the action, and the target. Entries are immutable: there is no
// update or delete operation anywhere in the application.
package audit

import (
	"errors"
	"time"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/core/domain/model/principal"
	"servicetrack/internal/pkg/errs"
)

// Action names for every mutating operation of the core.
const (
	ActionCreateOrder           = "create_order"
	ActionUpdateStatus          = "update_status"
	ActionAssignTechnician      = "assign_technician"
	ActionUpdateSalesAssignment = "update_sales_assignment"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// the NewEntry factory method.
var ErrEntryIsNotConstructed = errors.New("audit Entry must be created via NewEntry constructor")

// Entry is one immutable audit record: who did what to which target, with an
// opaque structured detail payload.
//
// Total ordering across targets is not guaranteed (concurrent writers), but
// the per-target order matches the order in which the corresponding mutations
// committed.
type Entry struct {
	// actorID is the principal that performed the action
	actorID kernel.UUID

	// role is the actor's role at the time of the action
	role principal.Role

	// action is one of the Action* names
	action string

	// targetID is the id of the mutated object, usually an order
	targetID kernel.UUID

	// detail is an opaque structured payload describing the action
	detail map[string]any

	// timestamp is the time the entry was produced
	timestamp time.Time

	// isConstructed ensures the entry was created via NewEntry
	isConstructed bool
}

// NewEntry creates a validated audit Entry. The detail map is copied so later
// mutation by the caller cannot change the recorded payload.
func NewEntry(
	actorID kernel.UUID,
	role principal.Role,
	action string,
	targetID kernel.UUID,
	detail map[string]any,
	timestamp time.Time,
) (Entry, error) {
	if err := actorID.Validate(); err != nil {
		return Entry{}, err
	}
	if err := role.Validate(); err != nil {
		return Entry{}, err
	}
	if action == "" {
		return Entry{}, errs.NewValueIsRequiredError("action")
	}
	if err := targetID.Validate(); err != nil {
		return Entry{}, err
	}
	if timestamp.IsZero() {
		return Entry{}, errs.NewValueIsRequiredError("timestamp")
	}

	copied := make(map[string]any, len(detail))
	for k, v := range detail {
		copied[k] = v
	}

	return Entry{
		actorID:       actorID,
		role:          role,
		action:        action,
		targetID:      targetID,
		detail:        copied,
		timestamp:     timestamp,
		isConstructed: true,
	}, nil
}

// Validate ensures the Entry was properly constructed through NewEntry.
func (e Entry) Validate() error {
	if !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ActorID returns the principal that performed the action.
func (e Entry) ActorID() kernel.UUID {
	return e.actorID
}

// Role returns the actor's role at the time of the action.
func (e Entry) Role() principal.Role {
	return e.role
}

// Action returns the action name.
func (e Entry) Action() string {
	return e.action
}

// TargetID returns the id of the mutated object.
func (e Entry) TargetID() kernel.UUID {
	return e.targetID
}

// Detail returns a copy of the structured payload.
func (e Entry) Detail() map[string]any {
	copied := make(map[string]any, len(e.detail))
	for k, v := range e.detail {
		copied[k] = v
	}
	return copied
}

// Timestamp returns the time the entry was produced.
func (e Entry) Timestamp() time.Time {
	return e.timestamp
}
