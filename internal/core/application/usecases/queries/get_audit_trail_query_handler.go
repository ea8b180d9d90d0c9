package queries

import (
	"context"
	"encoding/json"

	"servicetrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAuditTrailQueryHandler retrieves the audit trail of one target.
// An object that was never mutated has an empty trail, not an error.
type GetAuditTrailQueryHandler struct {
	db *gorm.DB
}

// NewGetAuditTrailQueryHandler creates a handler for audit trail queries.
func NewGetAuditTrailQueryHandler(db *gorm.DB) GetAuditTrailQueryHandler {
	return GetAuditTrailQueryHandler{db: db}
}

// Handle executes the query. Entries come back in commit order; ties on the
// timestamp are broken by insertion id.
func (h GetAuditTrailQueryHandler) Handle(
	ctx context.Context,
	query GetAuditTrailQuery,
) ([]GetAuditTrailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetAuditTrailQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			actor_id,
			role,
			action,
			target_id,
			detail,
			occurred_at
		FROM audit_entries
		WHERE target_id = ?
		ORDER BY occurred_at, id
	`, query.TargetID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAuditTrailQueryResponse
		var actorID, targetID uuid.UUID
		var detail []byte

		err = rows.Scan(&actorID, &resp.Role, &resp.Action, &targetID, &detail, &resp.Timestamp)
		if err != nil {
			return nil, err
		}

		resp.ActorID, err = kernel.UUIDFromBytes(actorID[:])
		if err != nil {
			return nil, err
		}
		resp.TargetID, err = kernel.UUIDFromBytes(targetID[:])
		if err != nil {
			return nil, err
		}

		if len(detail) > 0 {
			if err = json.Unmarshal(detail, &resp.Detail); err != nil {
				return nil, err
			}
		}
		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
