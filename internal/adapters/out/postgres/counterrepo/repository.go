// Package counterrepo implements the track number sequence over a single
// counter row. The increment happens inside the caller's transaction through
// one UPDATE with row locking, so concurrent allocations serialize on the
// row and can never observe the same value.
package counterrepo

import (
	"context"
	"database/sql"
	"errors"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// counterName is the single sequence row all service orders draw from.
const counterName = "service_request_counter"

// CounterDTO represents one named sequence row.
type CounterDTO struct {
	Name          string `gorm:"type:text;primaryKey"`
	CurrentNumber int64
}

// TableName specifies the database table name for sequence counters.
func (CounterDTO) TableName() string {
	return "counters"
}

// GormCounterRepository implements CounterRepository using GORM.
type GormCounterRepository struct {
	db *gorm.DB
}

// NewGormCounterRepository creates a new GORM counter repository.
func NewGormCounterRepository(db *gorm.DB) *GormCounterRepository {
	return &GormCounterRepository{db: db}
}

// NextTrackNumber increments the counter row and returns the resulting
// track number. A missing counter row means the environment was never
// provisioned and is reported as a configuration error, not a zero value.
func (r *GormCounterRepository) NextTrackNumber(ctx context.Context) (kernel.TrackNumber, error) {
	row := r.db.WithContext(ctx).Raw(`
		UPDATE counters
		SET current_number = current_number + 1
		WHERE name = ?
		RETURNING current_number
	`, counterName).Row()

	var current int64
	if err := row.Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return kernel.TrackNumber{}, errs.NewConfigurationError(
				"counter row " + counterName + " is missing",
			)
		}
		return kernel.TrackNumber{}, err
	}

	return kernel.NewTrackNumber(current)
}

// EnsureCounter provisions the counter row if it does not exist yet.
// Idempotent; an existing row and its current value are left untouched.
// Called once at startup, outside any business transaction.
func EnsureCounter(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&CounterDTO{Name: counterName, CurrentNumber: 0}).Error
}
