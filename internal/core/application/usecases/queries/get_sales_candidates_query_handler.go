package queries

import (
	"context"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/core/domain/model/principal"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSalesCandidatesQueryHandler retrieves sales contact candidates from the
// principal directory.
type GetSalesCandidatesQueryHandler struct {
	db *gorm.DB
}

// NewGetSalesCandidatesQueryHandler creates a handler for sales candidate queries.
func NewGetSalesCandidatesQueryHandler(db *gorm.DB) GetSalesCandidatesQueryHandler {
	return GetSalesCandidatesQueryHandler{db: db}
}

// Handle executes the query. Only approved principals in the sales division
// qualify; results are sorted by name.
func (h GetSalesCandidatesQueryHandler) Handle(
	ctx context.Context,
	query GetSalesCandidatesQuery,
) ([]GetSalesCandidatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]GetSalesCandidatesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email
		FROM principals
		WHERE approved AND division = ?
		ORDER BY name
	`, principal.DivisionSales).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetSalesCandidatesQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.Email); err != nil {
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
