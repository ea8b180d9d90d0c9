package queries

import (
	"errors"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/pkg/guard"
)

var (
	ErrGetSalesCandidatesQueryIsNotConstructed = errors.New(
		"GetSalesCandidatesQuery must be created via NewGetSalesCandidatesQuery constructor",
	)
)

// GetSalesCandidatesQuery retrieves the approved principals of the sales
// division. The sales assignment itself accepts free text; this list is a
// picker convenience, not a constraint.
type GetSalesCandidatesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSalesCandidatesQuery creates a query for sales contact candidates.
func NewGetSalesCandidatesQuery() GetSalesCandidatesQuery {
	return GetSalesCandidatesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSalesCandidatesQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesCandidatesQueryIsNotConstructed)
}

// GetSalesCandidatesQueryResponse is one sales contact candidate.
type GetSalesCandidatesQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Email string
}
