package commands

import (
	"context"
	"time"

	"servicetrack/internal/core/domain/model/audit"
	"servicetrack/internal/core/domain/model/order"
	"servicetrack/internal/core/domain/services"
	"servicetrack/internal/core/ports"
)

// TransitionStatusCommandHandler handles order status transitions.
// Loads the order, applies the transition through the status machine, and
// persists the updated projection plus the appended status log entry.
//
// Example:
//
//	handler := NewTransitionStatusCommandHandler(uowFactory, recorder)
//	cmd, _ := NewTransitionStatusCommand(orderID, "process", "work started", actor)
//
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // terminal state or unrecognized target; user-correctable
//	}
type TransitionStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       services.AccessGate
	recorder   ports.AuditRecorder
}

// NewTransitionStatusCommandHandler creates a handler for status transitions.
func NewTransitionStatusCommandHandler(
	uowFactory OrderUoWFactory,
	recorder ports.AuditRecorder,
) TransitionStatusCommandHandler {
	return TransitionStatusCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAccessGate(),
		recorder:   recorder,
	}
}

// Handle processes the status transition command.
//
// Flow: access gate (staff, manager, owner, admin; technician and sales are
// read-only) -> load order -> status machine transition -> persist -> commit
// -> record one update_status audit entry. A denied gate or a rejected
// transition leaves the order untouched.
func (h TransitionStatusCommandHandler) Handle(
	ctx context.Context, cmd TransitionStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if decision := h.gate.Authorize(actor, services.MutatingRoles...); !decision.Allowed() {
		return nil, decision.Err()
	}

	// An unrecognized name becomes Unknown so the status machine reports it
	// as InvalidTransition instead of a parse error.
	target, err := order.StatusFromString(cmd.NewStatus())
	if err != nil {
		target = order.Unknown
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
	if err = aggregate.ChangeStatus(target, cmd.Note(), actor.ID(), now); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if entry, auditErr := audit.NewEntry(
		actor.ID(), actor.Role(), audit.ActionUpdateStatus, aggregate.ID(),
		map[string]any{
			"newStatus": target.String(),
			"note":      cmd.Note(),
		},
		now,
	); auditErr == nil {
		h.recorder.Record(ctx, entry)
	}

	return aggregate, nil
}
