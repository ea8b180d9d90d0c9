package orderrepo

import (
	"context"
	"errors"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/core/domain/model/order"
	"servicetrack/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// pq error code for unique constraint violations.
const uniqueViolation = "23505"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database, the initial status log entry
// included. A track number collision surfaces as a value error rather than
// a raw constraint violation.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewValueIsInvalidErrorWithCause("trackNumber", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The projection row is
// rewritten in full; status log rows are only appended, never touched once
// written. Writing back an aggregate whose log has been outpaced by a
// concurrent writer fails with *errs.VersionIsInvalidError so the caller's
// transaction rolls the projection change back instead of committing a
// status the log never recorded.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("TrackNumber", "CustomerName", "Item", "Complaint",
			"Status", "TechnicianIDs", "SalesName", "LastUpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.appendNewLogEntries(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// appendNewLogEntries inserts the status log rows the stored copy does not
// have yet. Existing rows are left alone, keeping the log append-only.
//
// The stored log is also used as the concurrency check: if it has grown past
// what this aggregate loaded, or its tail no longer matches the aggregate's
// copy, a concurrent writer committed in between and this write is stale.
// Silently skipping the overlapping rows would commit the projection status
// without its log entry, so the write is rejected instead.
func (r *GormOrderRepository) appendNewLogEntries(ctx context.Context, dto OrderDTO) error {
	var storedCount int64
	err := r.db.WithContext(ctx).
		Model(&StatusEventDTO{}).
		Where("order_id = ?", dto.ID).
		Count(&storedCount).Error
	if err != nil {
		return err
	}

	if storedCount > int64(len(dto.StatusLog)) {
		return errs.NewVersionIsInvalidErrorWithCause("statusLog")
	}

	if storedCount > 0 {
		var stored StatusEventDTO
		err = r.db.WithContext(ctx).
			Where("order_id = ? AND seq = ?", dto.ID, storedCount-1).
			First(&stored).Error
		if err != nil {
			return err
		}

		known := dto.StatusLog[storedCount-1]
		if stored.Status != known.Status ||
			stored.UpdatedBy != known.UpdatedBy ||
			stored.Note != known.Note {
			return errs.NewVersionIsInvalidErrorWithCause("statusLog")
		}
	}

	for _, row := range dto.StatusLog {
		if int64(row.Seq) < storedCount {
			continue
		}
		if err = r.db.WithContext(ctx).Create(&row).Error; err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
				// An in-flight writer beat us to this seq.
				return errs.NewVersionIsInvalidError("statusLog", err)
			}
			return err
		}
	}

	return nil
}

// Get retrieves an order by ID with its full status log.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("StatusLog", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackNumber retrieves an order by its track number receipt.
func (r *GormOrderRepository) GetByTrackNumber(
	ctx context.Context, trackNumber kernel.TrackNumber,
) (*order.Order, error) {
	if err := trackNumber.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("StatusLog", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq")
		}).
		First(&dto, "track_number = ?", trackNumber.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", trackNumber.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
