package commands

import (
	"errors"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/core/domain/model/principal"
	"servicetrack/internal/pkg/guard"
)

var (
	ErrAssignSalesCommandIsNotConstructed = errors.New(
		"AssignSalesCommand must be created via NewAssignSalesCommand constructor",
	)
)

// AssignSalesCommand represents a request to set the sales contact label on
// an order. The label is free text; the candidate list from the sales
// division is a convenience for pickers, not a constraint.
type AssignSalesCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	label   string
	actor   *principal.Principal

	guard guard.ConstructorGuard
}

// NewAssignSalesCommand creates a command to set an order's sales contact.
// A blank label is judged by the aggregate during handling, not here.
func NewAssignSalesCommand(
	orderID kernel.UUID,
	label string,
	actor *principal.Principal,
) (AssignSalesCommand, error) {
	cmd := AssignSalesCommand{
		label: label,
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AssignSalesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignSalesCommand) Validate() error {
	return c.guard.Validate(ErrAssignSalesCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c AssignSalesCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Label returns the requested sales contact label as given.
func (c AssignSalesCommand) Label() string {
	return c.label
}

// Actor returns the principal performing the update, or nil without a session.
func (c AssignSalesCommand) Actor() *principal.Principal {
	return c.actor
}

func (c *AssignSalesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
