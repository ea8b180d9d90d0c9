// Package ports defines repository interfaces for the servicetrack domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// together with their append-only status logs.
type OrderRepository interface {
	// Add persists a new order aggregate to storage, including the initial
	// status log entry. The order must be valid and not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Status log
	// entries are append-only: Update inserts log entries the stored copy
	// does not have yet and never rewrites existing ones.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// with the full status log in append order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackNumber retrieves an order aggregate by its track number.
	// Used for idempotent re-query when a caller abandoned a creation call
	// before learning the outcome.
	GetByTrackNumber(ctx context.Context, trackNumber kernel.TrackNumber) (*order.Order, error)
}
