package commands

import (
	"errors"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/core/domain/model/principal"
	"servicetrack/internal/pkg/guard"
)

var (
	ErrAssignTechniciansCommandIsNotConstructed = errors.New(
		"AssignTechniciansCommand must be created via NewAssignTechniciansCommand constructor",
	)
)

// AssignTechniciansCommand represents a request to replace the set of
// technicians responsible for an order. The list is a wholesale replacement,
// not a patch.
type AssignTechniciansCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	technicianIDs []kernel.UUID
	actor         *principal.Principal

	guard guard.ConstructorGuard
}

// NewAssignTechniciansCommand creates a command to assign technicians to an order.
// The ids are validated for well-formedness here; eligibility against the
// directory is checked at handling time.
func NewAssignTechniciansCommand(
	orderID kernel.UUID,
	technicianIDs []kernel.UUID,
	actor *principal.Principal,
) (AssignTechniciansCommand, error) {
	cmd := AssignTechniciansCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTechnicianIDs(technicianIDs),
	)
	if err != nil {
		return AssignTechniciansCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTechniciansCommand) Validate() error {
	return c.guard.Validate(ErrAssignTechniciansCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignTechniciansCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TechnicianIDs returns a copy of the requested technician set.
func (c AssignTechniciansCommand) TechnicianIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.technicianIDs))
	copy(ids, c.technicianIDs)
	return ids
}

// Actor returns the principal performing the assignment, or nil without a session.
func (c AssignTechniciansCommand) Actor() *principal.Principal {
	return c.actor
}

func (c *AssignTechniciansCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignTechniciansCommand) setTechnicianIDs(technicianIDs []kernel.UUID) error {
	for _, id := range technicianIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.technicianIDs = make([]kernel.UUID, len(technicianIDs))
	copy(c.technicianIDs, technicianIDs)
	return nil
}
