package commands

import (
	"errors"
	"strings"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/core/domain/model/principal"
	"servicetrack/internal/pkg/errs"
	"servicetrack/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new service order at
// intake. Encapsulates the customer details, the item under repair, and the
// acting principal; the track number is allocated by the handler, never
// supplied by the caller.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "Siti", "Asus laptop", "does not power on", actor)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, recorder)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerName string
	item         string
	complaint    string
	actor        *principal.Principal

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new service order.
// Validates that the order id is valid and customer name and item are
// non-blank. The actor may be nil; the access gate turns that into a
// no_session denial in the handler.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	item string,
	complaint string,
	actor *principal.Principal,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		complaint: strings.TrimSpace(complaint),
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setItem(item),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the customer the order belongs to.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Item returns the device or object under repair.
func (c CreateOrderCommand) Item() string {
	return c.item
}

// Complaint returns the customer's problem description.
func (c CreateOrderCommand) Complaint() string {
	return c.complaint
}

// Actor returns the principal performing the intake, or nil without a session.
func (c CreateOrderCommand) Actor() *principal.Principal {
	return c.actor
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	c.customerName = strings.TrimSpace(customerName)
	return nil
}

func (c *CreateOrderCommand) setItem(item string) error {
	if strings.TrimSpace(item) == "" {
		return errs.NewValueIsRequiredError("item")
	}
	c.item = strings.TrimSpace(item)
	return nil
}
