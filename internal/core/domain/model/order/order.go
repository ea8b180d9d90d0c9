package order

import (
	"errors"
	"strings"
	"time"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a service/repair order in the system. It is the aggregate root
// that manages the order lifecycle from intake through repair to closure.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid track number
//   - The track number is assigned exactly once at creation and never changes
//   - The status log is append-only and its last entry's status equals Status()
//   - Technician and sales assignments are independent of the status machine
//   - Orders are never hard-deleted; done and cancel are the terminal statuses
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// trackNumber is the sequentially issued human-readable identifier
	trackNumber kernel.TrackNumber

	// customerName identifies whose item is being serviced
	customerName string

	// item describes the device or object under repair
	item string

	// complaint is the customer's description of the problem
	complaint string

	// status is the current state in the order lifecycle
	status Status

	// technicianIDs is the set of principals assigned to work the order
	technicianIDs []kernel.UUID

	// salesName is the label of the sales contact attached to the order
	salesName string

	// statusLog is the append-only history of status transitions
	statusLog []StatusEvent

	// createdAt is the intake time
	createdAt time.Time

	// lastUpdatedAt is the time of the most recent mutation
	lastUpdatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order at intake. The order starts in Pending status
// with a synthetic first status event by the creating principal, so the status
// log invariant (last entry == current status) holds from the very first read.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - trackNumber: The freshly allocated track number (must be valid)
//   - customerName: Whose item is being serviced (must be non-blank)
//   - item: The device or object under repair (must be non-blank)
//   - complaint: The customer's problem description (may be empty)
//   - createdBy: The principal creating the order (must be a valid UUID)
//   - now: Intake wall-clock time (must not be zero)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	trackNumber kernel.TrackNumber,
	customerName string,
	item string,
	complaint string,
	createdBy kernel.UUID,
	now time.Time,
) (*Order, error) {
	o := &Order{
		complaint:     strings.TrimSpace(complaint),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTrackNumber(trackNumber),
		o.setCustomerName(customerName),
		o.setItem(item),
	); err != nil {
		return nil, err
	}

	initial, err := NewStatusEvent(Pending, "order created", createdBy, now)
	if err != nil {
		return nil, err
	}

	o.status = Pending
	o.statusLog = []StatusEvent{initial}
	o.createdAt = now
	o.lastUpdatedAt = now
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running intake
// rules. The repository is trusted to supply a log that already satisfies the
// append-only invariant; RestoreOrder re-checks the projection/log consistency
// as a data-integrity guard.
func RestoreOrder(
	id kernel.UUID,
	trackNumber kernel.TrackNumber,
	customerName string,
	item string,
	complaint string,
	status Status,
	technicianIDs []kernel.UUID,
	salesName string,
	statusLog []StatusEvent,
	createdAt time.Time,
	lastUpdatedAt time.Time,
) (*Order, error) {
	o := &Order{
		complaint:     complaint,
		salesName:     salesName,
		technicianIDs: technicianIDs,
		createdAt:     createdAt,
		lastUpdatedAt: lastUpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTrackNumber(trackNumber),
		o.setCustomerName(customerName),
		o.setItem(item),
	); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if len(statusLog) == 0 {
		return nil, errs.NewValueIsRequiredError("statusLog")
	}
	if statusLog[len(statusLog)-1].Status() != status {
		return nil, errs.NewValueIsInvalidError("statusLog does not end with the current status")
	}

	o.status = status
	o.statusLog = statusLog
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly instantiating
// the struct.
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

// TrackNumber returns the order's immutable track number.
func (o *Order) TrackNumber() kernel.TrackNumber {
	return o.trackNumber
}

// CustomerName returns the customer the order belongs to.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Item returns the device or object under repair.
func (o *Order) Item() string {
	return o.item
}

// Complaint returns the customer's problem description.
func (o *Order) Complaint() string {
	return o.complaint
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Technicians returns the ids of the assigned technicians.
// The returned slice is a copy; mutations do not affect the order.
func (o *Order) Technicians() []kernel.UUID {
	ids := make([]kernel.UUID, len(o.technicianIDs))
	copy(ids, o.technicianIDs)
	return ids
}

// SalesName returns the sales contact label, or "" when unassigned.
func (o *Order) SalesName() string {
	return o.salesName
}

// StatusLog returns the append-only transition history in append order.
// The returned slice is a copy; mutations do not affect the order.
func (o *Order) StatusLog() []StatusEvent {
	log := make([]StatusEvent, len(o.statusLog))
	copy(log, o.statusLog)
	return log
}

// CreatedAt returns the intake time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// LastUpdatedAt returns the time of the most recent mutation.
func (o *Order) LastUpdatedAt() time.Time {
	return o.lastUpdatedAt
}

// ChangeStatus applies a status transition performed by the given principal.
//
// This method enforces the following business rules:
//   - The current status must not be terminal (done, cancel)
//   - The target status must be a recognized status value
//
// On success it appends a StatusEvent to the log, updates the status
// projection, and bumps lastUpdatedAt, so the log and the projection stay
// consistent in one place.
//
// Returns:
//   - nil on a successful transition
//   - *errs.InvalidTransitionError if the transition is not allowed
//   - a validation error if actor or timestamp are invalid
func (o *Order) ChangeStatus(target Status, note string, actorID kernel.UUID, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	event, err := NewStatusEvent(newStatus, note, actorID, now)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.statusLog = append(o.statusLog, event)
	o.lastUpdatedAt = now
	return nil
}

// AssignTechnicians replaces the order's technician set wholesale with the
// given ids. Assignment is independent of the status machine.
//
// This method enforces the following business rules:
//   - The list must not be empty (detaching everyone is not a valid operation)
//   - Every id must be a valid UUID
//   - Duplicate ids collapse into one entry
//
// Eligibility of the ids against the principal directory is checked by the
// command handler; the aggregate does not reach out to the directory.
//
// Returns:
//   - nil on success
//   - *errs.EmptyAssignmentError for an empty list
func (o *Order) AssignTechnicians(technicianIDs []kernel.UUID, now time.Time) error {
	if len(technicianIDs) == 0 {
		return errs.NewEmptyAssignmentError("technicianIDs")
	}

	deduped := make([]kernel.UUID, 0, len(technicianIDs))
	for _, id := range technicianIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		seen := false
		for _, existing := range deduped {
			if existing.IsEqual(id) {
				seen = true
				break
			}
		}
		if !seen {
			deduped = append(deduped, id)
		}
	}

	o.technicianIDs = deduped
	o.lastUpdatedAt = now
	return nil
}

// AssignSales sets the sales contact label. The label is trimmed; assignment
// is independent of the status machine and of the technician set.
//
// Returns:
//   - nil on success
//   - *errs.EmptyAssignmentError for a blank or whitespace-only label
func (o *Order) AssignSales(label string, now time.Time) error {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return errs.NewEmptyAssignmentError("salesName")
	}

	o.salesName = trimmed
	o.lastUpdatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTrackNumber(trackNumber kernel.TrackNumber) error {
	if err := trackNumber.Validate(); err != nil {
		return err
	}
	o.trackNumber = trackNumber
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = strings.TrimSpace(customerName)
	return nil
}

func (o *Order) setItem(item string) error {
	if strings.TrimSpace(item) == "" {
		return errs.NewValueIsRequiredError("item")
	}
	o.item = strings.TrimSpace(item)
	return nil
}
