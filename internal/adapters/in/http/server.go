// Package http exposes the application's use cases over a REST API built on
// Echo. Handlers translate JSON requests into commands and queries, and map
// domain errors onto HTTP status codes; no business logic lives here.
package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/cash"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	assignDriverHandler         commands.AssignDriverCommandHandler
	advanceOrderHandler         commands.AdvanceOrderCommandHandler
	markOrderReturnedHandler    commands.MarkOrderReturnedCommandHandler
	registerDriverHandler       commands.RegisterDriverCommandHandler
	changeDriverStatusHandler   commands.ChangeDriverStatusCommandHandler
	updateDriverLocationHandler commands.UpdateDriverLocationCommandHandler
	recordCollectionHandler     commands.RecordCollectionCommandHandler
	approveCollectionHandler    commands.ApproveCollectionCommandHandler
	rejectCollectionHandler     commands.RejectCollectionCommandHandler

	// Query handlers
	listOrdersHandler        queries.ListOrdersQueryHandler
	listDriversHandler       queries.ListDriversQueryHandler
	listCollectionsHandler   queries.ListCollectionsQueryHandler
	getPendingCashHandler    queries.GetPendingCashQueryHandler
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler
	getLiveLocationsHandler  queries.GetLiveLocationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	markOrderReturnedHandler commands.MarkOrderReturnedCommandHandler,
	registerDriverHandler commands.RegisterDriverCommandHandler,
	changeDriverStatusHandler commands.ChangeDriverStatusCommandHandler,
	updateDriverLocationHandler commands.UpdateDriverLocationCommandHandler,
	recordCollectionHandler commands.RecordCollectionCommandHandler,
	approveCollectionHandler commands.ApproveCollectionCommandHandler,
	rejectCollectionHandler commands.RejectCollectionCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	listDriversHandler queries.ListDriversQueryHandler,
	listCollectionsHandler queries.ListCollectionsQueryHandler,
	getPendingCashHandler queries.GetPendingCashQueryHandler,
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler,
	getLiveLocationsHandler queries.GetLiveLocationsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		assignDriverHandler:         assignDriverHandler,
		advanceOrderHandler:         advanceOrderHandler,
		markOrderReturnedHandler:    markOrderReturnedHandler,
		registerDriverHandler:       registerDriverHandler,
		changeDriverStatusHandler:   changeDriverStatusHandler,
		updateDriverLocationHandler: updateDriverLocationHandler,
		recordCollectionHandler:     recordCollectionHandler,
		approveCollectionHandler:    approveCollectionHandler,
		rejectCollectionHandler:     rejectCollectionHandler,
		listOrdersHandler:           listOrdersHandler,
		listDriversHandler:          listDriversHandler,
		listCollectionsHandler:      listCollectionsHandler,
		getPendingCashHandler:       getPendingCashHandler,
		getDashboardStatsHandler:    getDashboardStatsHandler,
		getLiveLocationsHandler:     getLiveLocationsHandler,
	}
}

// RegisterRoutes attaches every endpoint to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/assign", s.AssignDriver)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.POST("/orders/:id/return", s.MarkOrderReturned)

	api.GET("/drivers", s.ListDrivers)
	api.POST("/drivers", s.RegisterDriver)
	api.POST("/drivers/:id/status", s.ChangeDriverStatus)
	api.POST("/drivers/:id/location", s.UpdateDriverLocation)
	api.GET("/drivers/:id/cash", s.GetPendingCash)

	api.GET("/cash", s.ListCollections)
	api.POST("/cash", s.RecordCollection)
	api.POST("/cash/:id/approve", s.ApproveCollection)
	api.POST("/cash/:id/reject", s.RejectCollection)

	api.GET("/stats", s.GetDashboardStats)
	api.GET("/locations", s.GetLiveLocations)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/orders - registers a new order for dispatch.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	payment, err := order.PaymentMethodFromString(request.Payment)
	if err != nil {
		return writeError(ctx, err)
	}

	amount, err := kernel.NewMoney(request.AmountCents)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, request.CustomerName,
		request.CustomerPhone, request.Address, amount, payment)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// ListOrders handles GET /api/orders - lists orders, optionally filtered by
// status and driver.
func (s *Server) ListOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		statusFilter = &status
	}

	var driverFilter *kernel.UUID
	if raw := ctx.QueryParam("driver_id"); raw != "" {
		driverID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		driverFilter = &driverID
	}

	query, err := queries.NewListOrdersQuery(statusFilter, driverFilter)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrder(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignDriver handles POST /api/orders/:id/assign - hands a pending order
// to a driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request AssignDriverRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrder handles POST /api/orders/:id/advance - moves an order one
// step forward in its lifecycle, guarded by the caller's expected status.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request AdvanceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	expected, err := order.StatusFromString(request.ExpectedStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, expected)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderReturned handles POST /api/orders/:id/return - records a failed
// delivery.
func (s *Server) MarkOrderReturned(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderReturnedCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.markOrderReturnedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterDriver handles POST /api/drivers - registers a new driver.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var request RegisterDriverRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewRegisterDriverCommand(driverID, request.Name, request.Vehicle)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.registerDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: driverID.String()})
}

// ListDrivers handles GET /api/drivers - lists drivers, optionally filtered
// by status.
func (s *Server) ListDrivers(ctx echo.Context) error {
	var statusFilter *driver.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := driver.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		statusFilter = &status
	}

	query, err := queries.NewListDriversQuery(statusFilter)
	if err != nil {
		return writeError(ctx, err)
	}

	drivers, err := s.listDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Driver, 0, len(drivers))
	for _, d := range drivers {
		response = append(response, toDriver(d))
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeDriverStatus handles POST /api/drivers/:id/status - moves a driver
// between duty states.
func (s *Server) ChangeDriverStatus(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request ChangeDriverStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	status, err := driver.StatusFromString(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeDriverStatusCommand(driverID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.changeDriverStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDriverLocation handles POST /api/drivers/:id/location - records a
// position report from the driver's device.
func (s *Server) UpdateDriverLocation(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request UpdateLocationRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewGeolocation(request.Latitude, request.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(driverID, location)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateDriverLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPendingCash handles GET /api/drivers/:id/cash - recomputes the
// driver's pending cash from the ledger.
func (s *Server) GetPendingCash(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetPendingCashQuery(driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getPendingCashHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PendingCash{
		DriverID:         response.DriverID.String(),
		PendingCashCents: response.PendingCash.Cents(),
	})
}

// RecordCollection handles POST /api/cash - submits a cash collection for
// review. The amount is computed server-side from the referenced orders.
func (s *Server) RecordCollection(ctx echo.Context) error {
	var request RecordCollectionRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return writeError(ctx, err)
	}

	orderIDs := make([]kernel.UUID, 0, len(request.OrderIDs))
	for _, raw := range request.OrderIDs {
		orderID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		orderIDs = append(orderIDs, orderID)
	}

	collectionID := kernel.NewUUID()
	cmd, err := commands.NewRecordCollectionCommand(collectionID, driverID, orderIDs, request.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.recordCollectionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: collectionID.String()})
}

// ListCollections handles GET /api/cash - lists collections, optionally
// filtered by status and driver.
func (s *Server) ListCollections(ctx echo.Context) error {
	var statusFilter *cash.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := cash.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		statusFilter = &status
	}

	var driverFilter *kernel.UUID
	if raw := ctx.QueryParam("driver_id"); raw != "" {
		driverID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		driverFilter = &driverID
	}

	query, err := queries.NewListCollectionsQuery(statusFilter, driverFilter)
	if err != nil {
		return writeError(ctx, err)
	}

	collections, err := s.listCollectionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Collection, 0, len(collections))
	for _, c := range collections {
		response = append(response, toCollection(c))
	}

	return ctx.JSON(http.StatusOK, response)
}

// ApproveCollection handles POST /api/cash/:id/approve - accepts a pending
// collection and settles it against the driver's balance.
func (s *Server) ApproveCollection(ctx echo.Context) error {
	collectionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request ApproveCollectionRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewApproveCollectionCommand(collectionID, request.ApprovedBy)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.approveCollectionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectCollection handles POST /api/cash/:id/reject - declines a pending
// collection, releasing its orders for resubmission.
func (s *Server) RejectCollection(ctx echo.Context) error {
	collectionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRejectCollectionCommand(collectionID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.rejectCollectionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDashboardStats handles GET /api/stats - returns operational statistics
// for the ops dashboard.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	stats, err := s.getDashboardStatsHandler.Handle(ctx.Request().Context(),
		queries.NewGetDashboardStatsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardStats{
		TotalOrders:           stats.TotalOrders,
		OrdersByStatus:        stats.OrdersByStatus,
		ActiveDrivers:         stats.ActiveDrivers,
		DeliveredToday:        stats.DeliveredToday,
		PendingCollections:    stats.PendingCollections,
		TotalPendingCashCents: stats.TotalPendingCash.Cents(),
	})
}

// GetLiveLocations handles GET /api/locations - returns the live driver map.
func (s *Server) GetLiveLocations(ctx echo.Context) error {
	locations, err := s.getLiveLocationsHandler.Handle(ctx.Request().Context(),
		queries.NewGetLiveLocationsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]LiveLocation, 0, len(locations))
	for _, location := range locations {
		response = append(response, toLiveLocation(location))
	}

	return ctx.JSON(http.StatusOK, response)
}
