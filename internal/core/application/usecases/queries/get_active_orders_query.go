package queries

import (
	"errors"
	"time"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves all orders still in a non-terminal status.
// Powers the workshop board view of everything currently in flight.
//
// Example:
//
//	query := queries.NewGetActiveOrdersQuery()
//	handler := queries.NewGetActiveOrdersQueryHandler(db)
//
//	active, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list active orders: %w", err)
//	}
//	fmt.Printf("%d orders in flight\n", len(active))
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve non-terminal orders.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is one row of the active order board.
type GetActiveOrdersQueryResponse struct {
	ID            kernel.UUID
	TrackNumber   string
	CustomerName  string
	Item          string
	Status        string
	SalesName     string
	LastUpdatedAt time.Time
}
