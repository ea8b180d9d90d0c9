package queries

import (
	"errors"
	"time"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/pkg/guard"
)

var (
	ErrGetAuditTrailQueryIsNotConstructed = errors.New(
		"GetAuditTrailQuery must be created via NewGetAuditTrailQuery constructor",
	)
)

// GetAuditTrailQuery retrieves the full audit trail of one target object,
// ordered the way the mutations were committed.
type GetAuditTrailQuery struct {
	targetID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAuditTrailQuery creates a query for the audit trail of a target.
func NewGetAuditTrailQuery(targetID kernel.UUID) (GetAuditTrailQuery, error) {
	if err := targetID.Validate(); err != nil {
		return GetAuditTrailQuery{}, err
	}
	return GetAuditTrailQuery{
		targetID: targetID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAuditTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditTrailQueryIsNotConstructed)
}

// TargetID returns the object whose trail is requested.
func (q GetAuditTrailQuery) TargetID() kernel.UUID {
	return q.targetID
}

// GetAuditTrailQueryResponse is one recorded mutation of the target.
type GetAuditTrailQueryResponse struct {
	ActorID   kernel.UUID
	Role      string
	Action    string
	TargetID  kernel.UUID
	Detail    map[string]any
	Timestamp time.Time
}
