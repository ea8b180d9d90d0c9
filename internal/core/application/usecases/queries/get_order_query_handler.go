package queries

import (
	"context"
	"database/sql"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order read model from the database.
// Reads the projection row and the status log in two queries; both go
// through raw SQL for read performance in the CQRS split.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns *errs.ObjectNotFoundError when no
// order matches the id or track number.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	where := "track_number = ?"
	arg := any(query.TrackNumber())
	notFoundParam := "trackNumber"
	if query.ByID() {
		where = "id = ?"
		arg = query.OrderID().String()
		notFoundParam = "orderID"
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			track_number,
			customer_name,
			item,
			complaint,
			status,
			technician_ids,
			sales_name,
			created_at,
			last_updated_at
		FROM orders
		WHERE `+where, arg).Row()

	var resp GetOrderQueryResponse
	var id uuid.UUID
	var technicianIDs pq.StringArray
	err := row.Scan(
		&id,
		&resp.TrackNumber,
		&resp.CustomerName,
		&resp.Item,
		&resp.Complaint,
		&resp.Status,
		&technicianIDs,
		&resp.SalesName,
		&resp.CreatedAt,
		&resp.LastUpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError(notFoundParam, arg)
		}
		return GetOrderQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.TechnicianIDs = make([]kernel.UUID, 0, len(technicianIDs))
	for _, raw := range technicianIDs {
		techID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.TechnicianIDs = append(resp.TechnicianIDs, techID)
	}

	resp.StatusLog, err = h.loadStatusLog(ctx, resp.ID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadStatusLog(
	ctx context.Context, orderID kernel.UUID,
) ([]StatusEventResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			note,
			updated_by,
			updated_at
		FROM status_events
		WHERE order_id = ?
		ORDER BY seq
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	log := make([]StatusEventResponse, 0)
	for rows.Next() {
		var event StatusEventResponse
		var updatedBy uuid.UUID

		if err = rows.Scan(&event.Status, &event.Note, &updatedBy, &event.UpdatedAt); err != nil {
			return nil, err
		}

		event.UpdatedBy, err = kernel.UUIDFromBytes(updatedBy[:])
		if err != nil {
			return nil, err
		}
		log = append(log, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return log, nil
}
