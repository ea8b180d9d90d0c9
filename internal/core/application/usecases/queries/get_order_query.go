package queries

import (
	"errors"
	"strings"
	"time"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/pkg/errs"
	"servicetrack/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery or NewGetOrderQueryByTrackNumber",
	)
)

// GetOrderQuery retrieves one order with its full status log, addressed
// either by order id or by track number. The track number form exists so a
// caller that lost the response of a creation call can re-query the outcome
// from the receipt.
//
// Example:
//
//	query, _ := queries.NewGetOrderQueryByTrackNumber("TNS-00034")
//	handler := queries.NewGetOrderQueryHandler(db)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("order lookup failed: %w", err)
//	}
//	fmt.Printf("order %s is %s\n", resp.TrackNumber, resp.Status)
type GetOrderQuery struct {
	orderID     kernel.UUID
	trackNumber string
	byID        bool

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query addressing an order by id.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		byID:    true,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewGetOrderQueryByTrackNumber creates a query addressing an order by its
// track number receipt.
func NewGetOrderQueryByTrackNumber(trackNumber string) (GetOrderQuery, error) {
	trackNumber = strings.TrimSpace(trackNumber)
	if trackNumber == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("trackNumber")
	}
	return GetOrderQuery{
		trackNumber: trackNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// ByID reports whether the query addresses the order by id.
func (q GetOrderQuery) ByID() bool {
	return q.byID
}

// OrderID returns the order id when ByID is true.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// TrackNumber returns the track number when ByID is false.
func (q GetOrderQuery) TrackNumber() string {
	return q.trackNumber
}

// StatusEventResponse is one entry of an order's append-only status log.
type StatusEventResponse struct {
	Status    string
	Note      string
	UpdatedBy kernel.UUID
	UpdatedAt time.Time
}

// GetOrderQueryResponse is the full order read model, status log included.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	TrackNumber   string
	CustomerName  string
	Item          string
	Complaint     string
	Status        string
	TechnicianIDs []kernel.UUID
	SalesName     string
	StatusLog     []StatusEventResponse
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}
