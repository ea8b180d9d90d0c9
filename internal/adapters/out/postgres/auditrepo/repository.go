// Package auditrepo persists audit entries to the audit_entries table.
// The table is strictly append-only; the adapter exposes no update or
// delete path, matching the AuditLog port.
package auditrepo

import (
	"context"
	"encoding/json"
	"time"

	"servicetrack/internal/core/domain/model/audit"
	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/core/domain/model/principal"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntryDTO represents one stored audit entry. The insertion id breaks
// timestamp ties so the per-target read order always matches commit order.
type EntryDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ActorID    uuid.UUID `gorm:"type:uuid"`
	Role       string    `gorm:"type:text"`
	Action     string    `gorm:"type:text"`
	TargetID   uuid.UUID `gorm:"type:uuid;index"`
	Detail     []byte    `gorm:"type:jsonb"`
	OccurredAt time.Time
}

// TableName specifies the database table name for audit entries.
func (EntryDTO) TableName() string {
	return "audit_entries"
}

func fromDomain(entry audit.Entry) (EntryDTO, error) {
	detail, err := json.Marshal(entry.Detail())
	if err != nil {
		return EntryDTO{}, err
	}

	return EntryDTO{
		ActorID:    entry.ActorID().Bytes(),
		Role:       entry.Role().String(),
		Action:     entry.Action(),
		TargetID:   entry.TargetID().Bytes(),
		Detail:     detail,
		OccurredAt: entry.Timestamp(),
	}, nil
}

func toDomain(dto EntryDTO) (audit.Entry, error) {
	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return audit.Entry{}, err
	}

	targetID, err := kernel.UUIDFromBytes(dto.TargetID[:])
	if err != nil {
		return audit.Entry{}, err
	}

	role, err := principal.RoleFromString(dto.Role)
	if err != nil {
		return audit.Entry{}, err
	}

	var detail map[string]any
	if len(dto.Detail) > 0 {
		if err = json.Unmarshal(dto.Detail, &detail); err != nil {
			return audit.Entry{}, err
		}
	}

	return audit.NewEntry(actorID, role, dto.Action, targetID, detail, dto.OccurredAt)
}

// GormAuditLog implements the AuditLog port using GORM.
type GormAuditLog struct {
	db *gorm.DB
}

// NewGormAuditLog creates a new GORM audit log.
func NewGormAuditLog(db *gorm.DB) *GormAuditLog {
	return &GormAuditLog{db: db}
}

// Append stores one audit entry.
func (r *GormAuditLog) Append(ctx context.Context, entry audit.Entry) error {
	dto, err := fromDomain(entry)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByTarget retrieves the full audit trail for one target in commit order.
func (r *GormAuditLog) ListByTarget(ctx context.Context, targetID kernel.UUID) ([]audit.Entry, error) {
	if err := targetID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Where("target_id = ?", targetID.Bytes()).
		Order("occurred_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]audit.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := toDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
