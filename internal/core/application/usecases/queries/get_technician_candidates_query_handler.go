package queries

import (
	"context"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/core/domain/model/principal"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTechnicianCandidatesQueryHandler retrieves assignable technicians from
// the principal directory.
type GetTechnicianCandidatesQueryHandler struct {
	db *gorm.DB
}

// NewGetTechnicianCandidatesQueryHandler creates a handler for technician
// candidate queries.
func NewGetTechnicianCandidatesQueryHandler(db *gorm.DB) GetTechnicianCandidatesQueryHandler {
	return GetTechnicianCandidatesQueryHandler{db: db}
}

// Handle executes the query. Only approved principals with a staff or
// manager role qualify; results are sorted by name.
func (h GetTechnicianCandidatesQueryHandler) Handle(
	ctx context.Context,
	query GetTechnicianCandidatesQuery,
) ([]GetTechnicianCandidatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]GetTechnicianCandidatesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			role
		FROM principals
		WHERE approved AND role IN (?, ?)
		ORDER BY name
	`, principal.RoleStaff.String(), principal.RoleManager.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetTechnicianCandidatesQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.Email, &resp.Role); err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}
