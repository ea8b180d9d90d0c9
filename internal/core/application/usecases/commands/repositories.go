// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: access gate check, transaction
// management, persistence, and exactly one audit record per successful mutation.
package commands

import (
	"context"

	"servicetrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PrincipalDirFactory provides access to the principal directory within a transaction.
	PrincipalDirFactory interface {
		PrincipalDirectory() ports.PrincipalDirectory
	}

	// CounterRepoFactory provides access to the sequence counter within a transaction.
	CounterRepoFactory interface {
		CounterRepository() ports.CounterRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by commands that only read and write the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation: the track
	// number issuance and the order insert must share one transaction.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		CounterRepoFactory
	}

	// CreateOrderUoWFactory creates new order-creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// AssignmentUoW manages transactions for assignment operations, which
	// read the principal directory while writing the order aggregate.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		PrincipalDirFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}
)
