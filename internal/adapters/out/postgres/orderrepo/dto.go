// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Implements the repository pattern for the order
// aggregate, handling the conversion between the domain model and the
// relational representation, including the append-only status log child table.
package orderrepo

import (
	"time"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database projection row of an order aggregate.
// The status column holds the current status duplicated from the last status
// log entry so list queries never need to join the log.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TrackNumber   string         `gorm:"type:text;uniqueIndex"`
	CustomerName  string         `gorm:"type:text"`
	Item          string         `gorm:"type:text"`
	Complaint     string         `gorm:"type:text"`
	Status        string         `gorm:"type:text;index"`
	TechnicianIDs pq.StringArray `gorm:"type:text[];column:technician_ids"`
	SalesName     string         `gorm:"type:text"`
	CreatedAt     time.Time
	LastUpdatedAt time.Time

	StatusLog []StatusEventDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// StatusEventDTO is one row of the append-only status log. Seq is the
// zero-based position within the order's log; rows are only ever inserted
// with a seq past the current end, never rewritten.
type StatusEventDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int       `gorm:"primaryKey;autoIncrement:false"`
	Status    string    `gorm:"type:text"`
	Note      string    `gorm:"type:text"`
	UpdatedBy uuid.UUID `gorm:"type:uuid"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for status log entries.
func (StatusEventDTO) TableName() string {
	return "status_events"
}

// fromDomain converts an order aggregate to its database representation,
// the full status log included.
func fromDomain(aggregate *order.Order) OrderDTO {
	technicianIDs := make(pq.StringArray, 0, len(aggregate.Technicians()))
	for _, id := range aggregate.Technicians() {
		technicianIDs = append(technicianIDs, id.String())
	}

	statusLog := make([]StatusEventDTO, 0, len(aggregate.StatusLog()))
	for seq, event := range aggregate.StatusLog() {
		statusLog = append(statusLog, StatusEventDTO{
			OrderID:   aggregate.ID().Bytes(),
			Seq:       seq,
			Status:    event.Status().String(),
			Note:      event.Note(),
			UpdatedBy: event.UpdatedBy().Bytes(),
			UpdatedAt: event.UpdatedAt(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		TrackNumber:   aggregate.TrackNumber().String(),
		CustomerName:  aggregate.CustomerName(),
		Item:          aggregate.Item(),
		Complaint:     aggregate.Complaint(),
		Status:        aggregate.Status().String(),
		TechnicianIDs: technicianIDs,
		SalesName:     aggregate.SalesName(),
		CreatedAt:     aggregate.CreatedAt(),
		LastUpdatedAt: aggregate.LastUpdatedAt(),
		StatusLog:     statusLog,
	}
}

// toDomain converts a database DTO to an order aggregate. The status log
// must be loaded and sorted by seq before calling.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackNumber, err := kernel.TrackNumberFromString(dto.TrackNumber)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	technicianIDs := make([]kernel.UUID, 0, len(dto.TechnicianIDs))
	for _, raw := range dto.TechnicianIDs {
		techID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		technicianIDs = append(technicianIDs, techID)
	}

	statusLog := make([]order.StatusEvent, 0, len(dto.StatusLog))
	for _, row := range dto.StatusLog {
		eventStatus, statusErr := order.StatusFromString(row.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		updatedBy, idErr := kernel.UUIDFromBytes(row.UpdatedBy[:])
		if idErr != nil {
			return nil, idErr
		}
		event, eventErr := order.NewStatusEvent(eventStatus, row.Note, updatedBy, row.UpdatedAt)
		if eventErr != nil {
			return nil, eventErr
		}
		statusLog = append(statusLog, event)
	}

	return order.RestoreOrder(
		id,
		trackNumber,
		dto.CustomerName,
		dto.Item,
		dto.Complaint,
		status,
		technicianIDs,
		dto.SalesName,
		statusLog,
		dto.CreatedAt,
		dto.LastUpdatedAt,
	)
}
