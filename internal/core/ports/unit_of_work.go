package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repository factories bound to the
// transaction. Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository instance bound to the current transaction.
	OrderRepository() OrderRepository

	// PrincipalDirectory returns a PrincipalDirectory instance bound to the current transaction.
	PrincipalDirectory() PrincipalDirectory

	// CounterRepository returns a CounterRepository instance bound to the current transaction.
	// Track number issuance must share the transaction with the order insert
	// so an aborted creation does not consume half a commit.
	CounterRepository() CounterRepository
}
