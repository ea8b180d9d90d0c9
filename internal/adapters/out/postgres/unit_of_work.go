// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work maintains one database transaction across the
// repositories a command handler touches, so the track number increment, the
// order write, and the status log append either all land or none do.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each business operation gets its own instance; instances are not safe for
// concurrent use.
package postgres

import (
	"context"

	"servicetrack/internal/adapters/out/postgres/counterrepo"
	"servicetrack/internal/adapters/out/postgres/orderrepo"
	"servicetrack/internal/adapters/out/postgres/principalrepo"
	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Kept for post-commit processing such as an outbox, should one be added.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one GORM
// connection pool. Each Create call returns a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the order,
// principal, and counter repositories, and tracks the aggregates modified
// within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates the transaction. Calling Begin again on an instance with
// an open transaction is a no-op, never a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is open, which
// makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository provides order persistence within the unit of work.
// Operations run inside the current transaction if one is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// PrincipalDirectory provides directory reads within the unit of work, so
// assignment eligibility is judged against the same snapshot the order
// write commits with.
func (uow *GormUnitOfWork) PrincipalDirectory() ports.PrincipalDirectory {
	return principalrepo.NewGormPrincipalDirectory(uow.conn())
}

// CounterRepository provides the track number sequence within the unit of
// work. The counter increment must share the order's transaction, so an
// abandoned creation rolls the counter back along with the insert.
func (uow *GormUnitOfWork) CounterRepository() ports.CounterRepository {
	return counterrepo.NewGormCounterRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by repository implementations on add and update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
