package commands

import (
	"context"
	"time"

	"servicetrack/internal/core/domain/model/audit"
	"servicetrack/internal/core/domain/model/order"
	"servicetrack/internal/core/domain/services"
	"servicetrack/internal/core/ports"
)

// AssignSalesCommandHandler handles sales contact updates for orders.
type AssignSalesCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       services.AccessGate
	recorder   ports.AuditRecorder
}

// NewAssignSalesCommandHandler creates a handler for sales contact updates.
func NewAssignSalesCommandHandler(
	uowFactory OrderUoWFactory,
	recorder ports.AuditRecorder,
) AssignSalesCommandHandler {
	return AssignSalesCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAccessGate(),
		recorder:   recorder,
	}
}

// Handle processes the sales contact update command.
//
// Flow: access gate -> load order -> set the trimmed label -> commit ->
// record one update_sales_assignment audit entry. A blank label is rejected
// by the aggregate with *errs.EmptyAssignmentError.
func (h AssignSalesCommandHandler) Handle(
	ctx context.Context, cmd AssignSalesCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err = aggregate.AssignSales(cmd.Label(), now); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if entry, auditErr := audit.NewEntry(
		actor.ID(), actor.Role(), audit.ActionUpdateSalesAssignment, aggregate.ID(),
		map[string]any{
			"sales": aggregate.SalesName(),
		},
		now,
	); auditErr == nil {
		h.recorder.Record(ctx, entry)
	}

	return aggregate, nil
}
