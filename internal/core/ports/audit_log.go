package ports

import (
	"context"

	"servicetrack/internal/core/domain/model/audit"
	"servicetrack/internal/core/domain/model/kernel"
)

// AuditLog is the append-only persistence contract for audit entries.
// There is deliberately no update or delete method.
type AuditLog interface {
	// Append stores one audit entry. The per-target read order of appended
	// entries matches their commit order.
	Append(ctx context.Context, entry audit.Entry) error

	// ListByTarget retrieves the full audit trail for one target in
	// commit order.
	ListByTarget(ctx context.Context, targetID kernel.UUID) ([]audit.Entry, error)
}

// AuditRecorder is the fire-and-forget side channel used by command handlers.
// Record never reports failure to the caller: audit completeness is
// best-effort and must not change the outcome of the originating mutation.
// Implementations log and buffer failed writes for later retry.
type AuditRecorder interface {
	Record(ctx context.Context, entry audit.Entry)
}
