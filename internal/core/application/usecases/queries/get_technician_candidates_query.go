package queries

import (
	"errors"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/pkg/guard"
)

var (
	ErrGetTechnicianCandidatesQueryIsNotConstructed = errors.New(
		"GetTechnicianCandidatesQuery must be created via NewGetTechnicianCandidatesQuery constructor",
	)
)

// GetTechnicianCandidatesQuery retrieves the principals eligible for
// technician assignment: approved, with a staff or manager role. Powers the
// assignment picker.
type GetTechnicianCandidatesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTechnicianCandidatesQuery creates a query for assignable technicians.
func NewGetTechnicianCandidatesQuery() GetTechnicianCandidatesQuery {
	return GetTechnicianCandidatesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTechnicianCandidatesQuery) Validate() error {
	return q.guard.Validate(ErrGetTechnicianCandidatesQueryIsNotConstructed)
}

// GetTechnicianCandidatesQueryResponse is one assignable technician.
type GetTechnicianCandidatesQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Email string
	Role  string
}
