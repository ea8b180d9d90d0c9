package commands

import (
	"errors"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/core/domain/model/principal"
	"servicetrack/internal/pkg/guard"
)

var (
	ErrTransitionStatusCommandIsNotConstructed = errors.New(
		"TransitionStatusCommand must be created via NewTransitionStatusCommand constructor",
	)
)

// TransitionStatusCommand represents a request to move an order to a new
// lifecycle status, with an optional note for the status log.
//
// The target status is carried as its raw string on purpose: recognizing it
// is the status machine's job, so an unrecognized value surfaces as
// InvalidTransition from the domain rather than a parse error at the edge.
type TransitionStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus string
	note      string
	actor     *principal.Principal

	guard guard.ConstructorGuard
}

// NewTransitionStatusCommand creates a command to transition an order's status.
// Validates the order id; the status value itself is judged by the status
// machine during handling.
func NewTransitionStatusCommand(
	orderID kernel.UUID,
	newStatus string,
	note string,
	actor *principal.Principal,
) (TransitionStatusCommand, error) {
	cmd := TransitionStatusCommand{
		newStatus: newStatus,
		note:      note,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return TransitionStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the raw target status name.
func (c TransitionStatusCommand) NewStatus() string {
	return c.newStatus
}

// Note returns the optional remark for the status log.
func (c TransitionStatusCommand) Note() string {
	return c.note
}

// Actor returns the principal performing the transition, or nil without a session.
func (c TransitionStatusCommand) Actor() *principal.Principal {
	return c.actor
}

func (c *TransitionStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
