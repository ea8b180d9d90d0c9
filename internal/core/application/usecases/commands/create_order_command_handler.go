package commands

import (
	"context"
	"time"

	"servicetrack/internal/core/domain/model/audit"
	"servicetrack/internal/core/domain/model/order"
	"servicetrack/internal/core/domain/services"
	"servicetrack/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Allocates a track number and creates the order in pending status inside
// one transaction, then records an audit entry.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, recorder)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "Siti", "Asus laptop", "no power", actor)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order intake failed: %w", err)
//	}
//	fmt.Printf("order %s registered", created.TrackNumber())
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	gate       services.AccessGate
	recorder   ports.AuditRecorder
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires a CreateOrderUoWFactory so the counter increment and the order
// insert share one transaction, and an AuditRecorder for the audit trail.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	recorder ports.AuditRecorder,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAccessGate(),
		recorder:   recorder,
	}
}

// Handle processes the order intake command.
//
// Flow: access gate (staff, manager, owner, admin) -> allocate track number
// and insert the order in one transaction -> commit -> record audit entry.
// The audit record is emitted only after the commit succeeded, so a crash
// between the two can lose the audit entry but never corrupt the order.
//
// Returns the created order, or a typed error: *errs.AccessDeniedError on
// gate denial, *errs.ConfigurationError when the counter row is missing.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if decision := h.gate.Authorize(actor, services.MutatingRoles...); !decision.Allowed() {
		return nil, decision.Err()
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	trackNumber, err := uow.CounterRepository().NextTrackNumber(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		trackNumber,
		cmd.CustomerName(),
		cmd.Item(),
		cmd.Complaint(),
		actor.ID(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if entry, auditErr := audit.NewEntry(
		actor.ID(), actor.Role(), audit.ActionCreateOrder, newOrder.ID(),
		map[string]any{
			"trackNumber":  trackNumber.String(),
			"customerName": newOrder.CustomerName(),
			"item":         newOrder.Item(),
		},
		now,
	); auditErr == nil {
		h.recorder.Record(ctx, entry)
	}

	return newOrder, nil
}
