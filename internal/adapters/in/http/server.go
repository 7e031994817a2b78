package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/metrics"
)

// Handlers bundles the application handlers the server dispatches to.
type Handlers struct {
	ScheduleOrder        commands.ScheduleOrderCommandHandler
	CreateDriver         commands.CreateDriverCommandHandler
	UpdateDriverLocation commands.UpdateDriverLocationCommandHandler
	DeleteDriver         commands.DeleteDriverCommandHandler
	DeleteOrder          commands.DeleteOrderCommandHandler

	FilterOrders      queries.FilterOrdersQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	GetAllDrivers     queries.GetAllDriversQueryHandler
	GetDriver         queries.GetDriverQueryHandler
	FindClosestDriver queries.FindClosestDriverQueryHandler
}

// Server translates HTTP requests into commands and queries.
// It owns the wire formats: datetimes and dates are parsed and rendered with
// the configured layouts, domain errors are mapped to status codes.
type Server struct {
	handlers       Handlers
	metrics        metrics.Metrics
	datetimeFormat string
	dateFormat     string
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(handlers Handlers, m metrics.Metrics, datetimeFormat, dateFormat string) *Server {
	return &Server{
		handlers:       handlers,
		metrics:        m,
		datetimeFormat: datetimeFormat,
		dateFormat:     dateFormat,
	}
}

// RegisterRoutes wires all API routes on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders/schedule", s.ScheduleOrder)
	api.GET("/orders", s.FilterOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.GET("/drivers", s.GetDrivers)
	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers/closest", s.FindClosestDriver)
	api.GET("/drivers/:id", s.GetDriver)
	api.DELETE("/drivers/:id", s.DeleteDriver)
	api.PUT("/drivers/:id/location", s.UpdateDriverLocation)
}

// ScheduleOrder handles POST /api/v1/orders/schedule - books a delivery slot.
func (s *Server) ScheduleOrder(ctx echo.Context) error {
	var req ScheduleOrderRequest
	if err := ctx.Bind(&req); err != nil {
		s.metrics.RecordOrderScheduled("invalid")
		return badRequest(ctx, "Invalid request body")
	}

	pickupTime, err := time.Parse(s.datetimeFormat, req.PickupDatetime)
	if err != nil {
		s.metrics.RecordOrderScheduled("invalid")
		return badRequest(ctx, "Datetime has wrong format. Use "+s.datetimeFormat)
	}

	cmd, err := commands.NewScheduleOrderCommand(
		req.Driver,
		pickupTime,
		kernel.NewLocation(req.PickupLat, req.PickupLng),
		kernel.NewLocation(req.DeliveryLat, req.DeliveryLng),
	)
	if err != nil {
		s.metrics.RecordOrderScheduled("invalid")
		return s.errorResponse(ctx, err)
	}

	orderID, err := s.handlers.ScheduleOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.metrics.RecordOrderScheduled(scheduleOutcome(err))
		return s.errorResponse(ctx, err)
	}

	s.metrics.RecordOrderScheduled("scheduled")
	return ctx.JSON(http.StatusCreated, ScheduleOrderResponse{ID: orderID})
}

// FilterOrders handles GET /api/v1/orders?date=&driver_id= - lists the orders
// of one day, most recent pickup first.
func (s *Server) FilterOrders(ctx echo.Context) error {
	var day time.Time
	if dateStr := ctx.QueryParam("date"); dateStr != "" {
		var err error
		if day, err = time.Parse(s.dateFormat, dateStr); err != nil {
			return badRequest(ctx, "Date has wrong format. Use "+s.dateFormat)
		}
	}

	driverID := 0
	if idStr := ctx.QueryParam("driver_id"); idStr != "" {
		var err error
		if driverID, err = strconv.Atoi(idStr); err != nil {
			return badRequest(ctx, "driver_id must be an integer")
		}
	}

	query, err := queries.NewFilterOrdersQuery(driverID, day)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	orders, err := s.handlers.FilterOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = s.toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "id must be an integer")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.toOrder(o))
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes one order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "id must be an integer")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDrivers handles GET /api/v1/drivers - retrieves the fleet.
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.handlers.GetAllDrivers.Handle(ctx.Request().Context(), queries.NewGetAllDriversQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]Driver, len(drivers))
	for i, d := range drivers {
		response[i] = s.toDriver(d)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/drivers - registers a driver manually.
// Without a last_update the position counts as reported right now.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req NewDriver
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	reportedAt, err := s.reportedAt(req.LastUpdate)
	if err != nil {
		return badRequest(ctx, "Datetime has wrong format. Use "+s.datetimeFormat)
	}

	cmd, err := commands.NewCreateDriverCommand(req.ID, kernel.NewLocation(req.Lat, req.Lng), reportedAt)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.handlers.CreateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetDriver handles GET /api/v1/drivers/:id - retrieves one driver.
func (s *Server) GetDriver(ctx echo.Context) error {
	driverID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "id must be an integer")
	}

	query, err := queries.NewGetDriverQuery(driverID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	d, err := s.handlers.GetDriver.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.toDriver(d))
}

// DeleteDriver handles DELETE /api/v1/drivers/:id - removes a driver that has
// no scheduled orders.
func (s *Server) DeleteDriver(ctx echo.Context) error {
	driverID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "id must be an integer")
	}

	cmd, err := commands.NewDeleteDriverCommand(driverID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.handlers.DeleteDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDriverLocation handles PUT /api/v1/drivers/:id/location - reports a
// new position for a driver. Older reports than the stored one are ignored.
func (s *Server) UpdateDriverLocation(ctx echo.Context) error {
	driverID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "id must be an integer")
	}

	var req DriverLocation
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	reportedAt, err := s.reportedAt(req.LastUpdate)
	if err != nil {
		return badRequest(ctx, "Datetime has wrong format. Use "+s.datetimeFormat)
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(driverID, kernel.NewLocation(req.Lat, req.Lng), reportedAt)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.handlers.UpdateDriverLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FindClosestDriver handles GET /api/v1/drivers/closest?datetime=&lat=&lng= -
// recommends the driver expected to be nearest to the pickup point at the
// requested time.
func (s *Server) FindClosestDriver(ctx echo.Context) error {
	for _, param := range []string{"datetime", "lat", "lng"} {
		if ctx.QueryParam(param) == "" {
			return s.errorResponse(ctx, errs.NewValueIsRequiredError(param))
		}
	}

	targetTime, err := time.Parse(s.datetimeFormat, ctx.QueryParam("datetime"))
	if err != nil {
		return badRequest(ctx, "Datetime has wrong format. Use "+s.datetimeFormat)
	}

	lat, err := strconv.Atoi(ctx.QueryParam("lat"))
	if err != nil {
		return badRequest(ctx, "lat must be an integer")
	}

	lng, err := strconv.Atoi(ctx.QueryParam("lng"))
	if err != nil {
		return badRequest(ctx, "lng must be an integer")
	}

	query, err := queries.NewFindClosestDriverQuery(targetTime, kernel.NewLocation(lat, lng))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	resp, err := s.handlers.FindClosestDriver.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, services.ErrDriverNotFound) {
			s.metrics.RecordDriverSearch("not_found")
		}
		return s.errorResponse(ctx, err)
	}

	s.metrics.RecordDriverSearch(string(resp.Phase))
	return ctx.JSON(http.StatusOK, ClosestDriver{ID: resp.DriverID, Phase: string(resp.Phase)})
}

func (s *Server) toOrder(o queries.OrderResponse) Order {
	return Order{
		ID:             o.ID,
		Driver:         o.DriverID,
		PickupDatetime: o.PickupTime.Format(s.datetimeFormat),
		PickupLat:      o.PickupLocation.Lat(),
		PickupLng:      o.PickupLocation.Lng(),
		DeliveryLat:    o.DeliveryLocation.Lat(),
		DeliveryLng:    o.DeliveryLocation.Lng(),
	}
}

func (s *Server) toDriver(d queries.DriverResponse) Driver {
	return Driver{
		ID:         d.ID,
		Lat:        d.Location.Lat(),
		Lng:        d.Location.Lng(),
		LastUpdate: d.LastUpdate.Format(s.datetimeFormat),
	}
}

func (s *Server) reportedAt(lastUpdate string) (time.Time, error) {
	if lastUpdate == "" {
		return time.Now(), nil
	}
	return time.Parse(s.datetimeFormat, lastUpdate)
}

// errorResponse maps domain errors to status codes. Anything unrecognized is
// an internal error.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrPastPickupTime),
		errors.Is(err, queries.ErrPastTargetTime),
		errors.Is(err, commands.ErrDriverDoesNotExist):
		code = http.StatusBadRequest
	case errors.Is(err, commands.ErrDriverIsBusy),
		errors.Is(err, ports.ErrDriverHasOrders):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, services.ErrDriverNotFound):
		code = http.StatusNotFound
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func pathID(ctx echo.Context) (int, error) {
	return strconv.Atoi(ctx.Param("id"))
}

func scheduleOutcome(err error) string {
	switch {
	case errors.Is(err, commands.ErrPastPickupTime):
		return "past_time"
	case errors.Is(err, commands.ErrDriverIsBusy):
		return "driver_busy"
	case errors.Is(err, commands.ErrDriverDoesNotExist):
		return "unknown_driver"
	default:
		return "error"
	}
}
