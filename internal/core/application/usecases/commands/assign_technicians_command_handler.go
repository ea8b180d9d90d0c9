package commands

import (
	"context"
	"fmt"
	"time"

	"servicetrack/internal/core/domain/model/audit"
	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/core/domain/model/order"
	"servicetrack/internal/core/domain/services"
	"servicetrack/internal/core/ports"
	"servicetrack/internal/pkg/errs"
)

// AssignTechniciansCommandHandler handles technician assignment for orders.
// Every requested technician must exist in the directory as an approved
// principal with a staff or manager role before the ledger is touched.
type AssignTechniciansCommandHandler struct {
	uowFactory AssignmentUoWFactory
	gate       services.AccessGate
	recorder   ports.AuditRecorder
}

// NewAssignTechniciansCommandHandler creates a handler for technician assignment.
func NewAssignTechniciansCommandHandler(
	uowFactory AssignmentUoWFactory,
	recorder ports.AuditRecorder,
) AssignTechniciansCommandHandler {
	return AssignTechniciansCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAccessGate(),
		recorder:   recorder,
	}
}

// Handle processes the technician assignment command.
//
// Flow: access gate -> load order -> verify each technician against the
// directory -> replace the assignment wholesale -> commit -> record one
// assign_technician audit entry. An empty list is rejected by the aggregate
// with *errs.EmptyAssignmentError before any directory lookup happens.
func (h AssignTechniciansCommandHandler) Handle(
	ctx context.Context, cmd AssignTechniciansCommand,
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

	technicianIDs := cmd.TechnicianIDs()
	directory := uow.PrincipalDirectory()
	for _, technicianID := range technicianIDs {
		technician, dirErr := directory.Get(ctx, technicianID)
		if dirErr != nil {
			return nil, dirErr
		}
		if !technician.IsAssignableTechnician() {
			return nil, errs.NewValueIsInvalidError(
				fmt.Sprintf("technicianIds[%s]", technicianID),
			)
		}
	}

	now := time.Now()
	if err = aggregate.AssignTechnicians(technicianIDs, now); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// The recorded set is the one the aggregate committed, which may be
	// smaller than the request when it carried duplicate ids.
	if entry, auditErr := audit.NewEntry(
		actor.ID(), actor.Role(), audit.ActionAssignTechnician, aggregate.ID(),
		map[string]any{
			"technicianIds": technicianIDStrings(aggregate.Technicians()),
		},
		now,
	); auditErr == nil {
		h.recorder.Record(ctx, entry)
	}

	return aggregate, nil
}

func technicianIDStrings(ids []kernel.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
