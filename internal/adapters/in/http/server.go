// Package http is the inbound HTTP adapter. Handlers stay thin: decode the
// request, build a command or query, hand it to the application layer, and
// translate the result. All authorization lives behind the handlers in the
// access gate.
package http

import (
	"net/http"

	"servicetrack/internal/core/application/usecases/commands"
	"servicetrack/internal/core/application/usecases/queries"
	"servicetrack/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	transitionStatusHandler  commands.TransitionStatusCommandHandler
	assignTechniciansHandler commands.AssignTechniciansCommandHandler
	assignSalesHandler       commands.AssignSalesCommandHandler

	// Query handlers
	getOrderHandler                queries.GetOrderQueryHandler
	getActiveOrdersHandler         queries.GetActiveOrdersQueryHandler
	getAuditTrailHandler           queries.GetAuditTrailQueryHandler
	getTechnicianCandidatesHandler queries.GetTechnicianCandidatesQueryHandler
	getSalesCandidatesHandler      queries.GetSalesCandidatesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionStatusHandler commands.TransitionStatusCommandHandler,
	assignTechniciansHandler commands.AssignTechniciansCommandHandler,
	assignSalesHandler commands.AssignSalesCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getAuditTrailHandler queries.GetAuditTrailQueryHandler,
	getTechnicianCandidatesHandler queries.GetTechnicianCandidatesQueryHandler,
	getSalesCandidatesHandler queries.GetSalesCandidatesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:             createOrderHandler,
		transitionStatusHandler:        transitionStatusHandler,
		assignTechniciansHandler:       assignTechniciansHandler,
		assignSalesHandler:             assignSalesHandler,
		getOrderHandler:                getOrderHandler,
		getActiveOrdersHandler:         getActiveOrdersHandler,
		getAuditTrailHandler:           getAuditTrailHandler,
		getTechnicianCandidatesHandler: getTechnicianCandidatesHandler,
		getSalesCandidatesHandler:      getSalesCandidatesHandler,
	}
}

// RegisterRoutes mounts the API on the given echo instance. The principal
// middleware must already be installed on the group or instance.
func (s *Server) RegisterRoutes(api *echo.Group) {
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetActiveOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.TransitionStatus)
	api.PUT("/orders/:id/technicians", s.AssignTechnicians)
	api.PUT("/orders/:id/sales", s.AssignSales)
	api.GET("/orders/:id/audit", s.GetAuditTrail)
	api.GET("/candidates/technicians", s.GetTechnicianCandidates)
	api.GET("/candidates/sales", s.GetSalesCandidates)
}

type createOrderRequest struct {
	CustomerName string `json:"customerName"`
	Item         string `json:"item"`
	Complaint    string `json:"complaint"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), req.CustomerName, req.Item, req.Complaint, actorFromContext(ctx),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		status := statusFromError(err)
		return ctx.JSON(status, errorBody(status, err))
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(created))
}

type transitionStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// TransitionStatus handles POST /api/v1/orders/:id/status.
func (s *Server) TransitionStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var req transitionStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewTransitionStatusCommand(orderID, req.Status, req.Note, actorFromContext(ctx))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid transition data: " + err.Error(),
		})
	}

	updated, err := s.transitionStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		status := statusFromError(err)
		return ctx.JSON(status, errorBody(status, err))
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

type assignTechniciansRequest struct {
	TechnicianIDs []string `json:"technicianIds"`
}

// AssignTechnicians handles PUT /api/v1/orders/:id/technicians.
func (s *Server) AssignTechnicians(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var req assignTechniciansRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	technicianIDs := make([]kernel.UUID, 0, len(req.TechnicianIDs))
	for _, raw := range req.TechnicianIDs {
		techID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid technician id: " + raw,
			})
		}
		technicianIDs = append(technicianIDs, techID)
	}

	cmd, err := commands.NewAssignTechniciansCommand(orderID, technicianIDs, actorFromContext(ctx))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid assignment data: " + err.Error(),
		})
	}

	updated, err := s.assignTechniciansHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		status := statusFromError(err)
		return ctx.JSON(status, errorBody(status, err))
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

type assignSalesRequest struct {
	Sales string `json:"sales"`
}

// AssignSales handles PUT /api/v1/orders/:id/sales.
func (s *Server) AssignSales(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var req assignSalesRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAssignSalesCommand(orderID, req.Sales, actorFromContext(ctx))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid assignment data: " + err.Error(),
		})
	}

	updated, err := s.assignSalesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		status := statusFromError(err)
		return ctx.JSON(status, errorBody(status, err))
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// GetOrder handles GET /api/v1/orders/:id. The :id segment accepts either
// an order id or a track number receipt, so a customer-facing caller can
// re-query an order straight from the printed receipt.
func (s *Server) GetOrder(ctx echo.Context) error {
	raw := ctx.Param("id")

	var query queries.GetOrderQuery
	var err error
	if orderID, idErr := kernel.UUIDFromString(raw); idErr == nil {
		query, err = queries.NewGetOrderQuery(orderID)
	} else {
		query, err = queries.NewGetOrderQueryByTrackNumber(raw)
	}
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order reference",
		})
	}

	model, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		status := statusFromError(err)
		return ctx.JSON(status, errorBody(status, err))
	}

	return ctx.JSON(http.StatusOK, orderResponseFromReadModel(model))
}

// GetActiveOrders handles GET /api/v1/orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		status := statusFromError(err)
		return ctx.JSON(status, errorBody(status, err))
	}

	response := make([]OrderSummaryResponse, 0, len(orders))
	for _, row := range orders {
		response = append(response, OrderSummaryResponse{
			ID:            row.ID.String(),
			TrackNumber:   row.TrackNumber,
			CustomerName:  row.CustomerName,
			Item:          row.Item,
			Status:        row.Status,
			SalesName:     row.SalesName,
			LastUpdatedAt: row.LastUpdatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAuditTrail handles GET /api/v1/orders/:id/audit.
func (s *Server) GetAuditTrail(ctx echo.Context) error {
	targetID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetAuditTrailQuery(targetID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid audit query: " + err.Error(),
		})
	}

	entries, err := s.getAuditTrailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		status := statusFromError(err)
		return ctx.JSON(status, errorBody(status, err))
	}

	response := make([]AuditEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, AuditEntryResponse{
			ActorID:   entry.ActorID.String(),
			Role:      entry.Role,
			Action:    entry.Action,
			TargetID:  entry.TargetID.String(),
			Detail:    entry.Detail,
			Timestamp: entry.Timestamp,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTechnicianCandidates handles GET /api/v1/candidates/technicians.
func (s *Server) GetTechnicianCandidates(ctx echo.Context) error {
	query := queries.NewGetTechnicianCandidatesQuery()

	candidates, err := s.getTechnicianCandidatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		status := statusFromError(err)
		return ctx.JSON(status, errorBody(status, err))
	}

	response := make([]CandidateResponse, 0, len(candidates))
	for _, candidate := range candidates {
		response = append(response, CandidateResponse{
			ID:    candidate.ID.String(),
			Name:  candidate.Name,
			Email: candidate.Email,
			Role:  candidate.Role,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSalesCandidates handles GET /api/v1/candidates/sales.
func (s *Server) GetSalesCandidates(ctx echo.Context) error {
	query := queries.NewGetSalesCandidatesQuery()

	candidates, err := s.getSalesCandidatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		status := statusFromError(err)
		return ctx.JSON(status, errorBody(status, err))
	}

	response := make([]CandidateResponse, 0, len(candidates))
	for _, candidate := range candidates {
		response = append(response, CandidateResponse{
			ID:    candidate.ID.String(),
			Name:  candidate.Name,
			Email: candidate.Email,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
