package http

import (
	"errors"
	"net/http"
	"time"

	"servicetrack/internal/core/application/usecases/queries"
	"servicetrack/internal/core/domain/model/order"
	"servicetrack/internal/core/domain/services"
	"servicetrack/internal/pkg/errs"
)

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StatusEventResponse is one status log entry in API responses.
type StatusEventResponse struct {
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	UpdatedBy string    `json:"updatedBy"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderResponse is the full order representation in API responses.
type OrderResponse struct {
	ID            string                `json:"id"`
	TrackNumber   string                `json:"trackNumber"`
	CustomerName  string                `json:"customerName"`
	Item          string                `json:"item"`
	Complaint     string                `json:"complaint,omitempty"`
	Status        string                `json:"status"`
	TechnicianIDs []string              `json:"technicianIds"`
	SalesName     string                `json:"salesName,omitempty"`
	StatusLog     []StatusEventResponse `json:"statusLog"`
	CreatedAt     time.Time             `json:"createdAt"`
	LastUpdatedAt time.Time             `json:"lastUpdatedAt"`
}

// OrderSummaryResponse is one row of the active order listing.
type OrderSummaryResponse struct {
	ID            string    `json:"id"`
	TrackNumber   string    `json:"trackNumber"`
	CustomerName  string    `json:"customerName"`
	Item          string    `json:"item"`
	Status        string    `json:"status"`
	SalesName     string    `json:"salesName,omitempty"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// AuditEntryResponse is one audit trail entry in API responses.
type AuditEntryResponse struct {
	ActorID   string         `json:"actorId"`
	Role      string         `json:"role"`
	Action    string         `json:"action"`
	TargetID  string         `json:"targetId"`
	Detail    map[string]any `json:"detail,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// CandidateResponse is one assignment picker entry.
type CandidateResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

func orderResponseFromAggregate(aggregate *order.Order) OrderResponse {
	technicianIDs := make([]string, 0, len(aggregate.Technicians()))
	for _, id := range aggregate.Technicians() {
		technicianIDs = append(technicianIDs, id.String())
	}

	statusLog := make([]StatusEventResponse, 0, len(aggregate.StatusLog()))
	for _, event := range aggregate.StatusLog() {
		statusLog = append(statusLog, StatusEventResponse{
			Status:    event.Status().String(),
			Note:      event.Note(),
			UpdatedBy: event.UpdatedBy().String(),
			UpdatedAt: event.UpdatedAt(),
		})
	}

	return OrderResponse{
		ID:            aggregate.ID().String(),
		TrackNumber:   aggregate.TrackNumber().String(),
		CustomerName:  aggregate.CustomerName(),
		Item:          aggregate.Item(),
		Complaint:     aggregate.Complaint(),
		Status:        aggregate.Status().String(),
		TechnicianIDs: technicianIDs,
		SalesName:     aggregate.SalesName(),
		StatusLog:     statusLog,
		CreatedAt:     aggregate.CreatedAt(),
		LastUpdatedAt: aggregate.LastUpdatedAt(),
	}
}

func orderResponseFromReadModel(model queries.GetOrderQueryResponse) OrderResponse {
	technicianIDs := make([]string, 0, len(model.TechnicianIDs))
	for _, id := range model.TechnicianIDs {
		technicianIDs = append(technicianIDs, id.String())
	}

	statusLog := make([]StatusEventResponse, 0, len(model.StatusLog))
	for _, event := range model.StatusLog {
		statusLog = append(statusLog, StatusEventResponse{
			Status:    event.Status,
			Note:      event.Note,
			UpdatedBy: event.UpdatedBy.String(),
			UpdatedAt: event.UpdatedAt,
		})
	}

	return OrderResponse{
		ID:            model.ID.String(),
		TrackNumber:   model.TrackNumber,
		CustomerName:  model.CustomerName,
		Item:          model.Item,
		Complaint:     model.Complaint,
		Status:        model.Status,
		TechnicianIDs: technicianIDs,
		SalesName:     model.SalesName,
		StatusLog:     statusLog,
		CreatedAt:     model.CreatedAt,
		LastUpdatedAt: model.LastUpdatedAt,
	}
}

// statusFromError maps business errors to HTTP status codes. A denial
// without a session is 401; every other denial is 403 and keeps its reason.
// Rejected transitions and empty assignments are 422 since the request was
// well-formed but not applicable. A write that lost to a concurrent one is
// 409; the caller re-reads and retries.
func statusFromError(err error) int {
	var denied *errs.AccessDeniedError
	if errors.As(err, &denied) {
		if denied.Reason == string(services.DenyNoSession) {
			return http.StatusUnauthorized
		}
		return http.StatusForbidden
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrEmptyAssignment):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(status int, err error) ErrorResponse {
	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the logs.
		message = "internal error"
	}
	return ErrorResponse{Code: status, Message: message}
}
