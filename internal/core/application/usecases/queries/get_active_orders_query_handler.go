package queries

import (
	"context"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves orders outside the terminal statuses.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Excludes done and cancel statuses; results are
// newest-activity first so the board surfaces recently touched orders.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			track_number,
			customer_name,
			item,
			status,
			sales_name,
			last_updated_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY last_updated_at DESC, id
	`, order.Done.String(), order.Cancel.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.TrackNumber,
			&resp.CustomerName,
			&resp.Item,
			&resp.Status,
			&resp.SalesName,
			&resp.LastUpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
