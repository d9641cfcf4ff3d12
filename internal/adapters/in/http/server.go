// Package http exposes the shipping module's use cases over a REST API.
// Handlers translate transport concerns only; all business rules stay in
// the application layer.
package http

import (
	"errors"
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentNoteHandler    commands.CreateShipmentNoteCommandHandler
	createCarrierShipmentHandler commands.CreateCarrierShipmentCommandHandler
	bookCarrierShipmentHandler   commands.BookCarrierShipmentCommandHandler
	cancelShipmentHandler        commands.CancelShipmentCommandHandler

	// Query handlers
	getShipperHandler       queries.GetShipperQueryHandler
	getRecipientHandler     queries.GetRecipientQueryHandler
	getDeliveryItemsHandler queries.GetDeliveryItemsQueryHandler
	getCarriersHandler      queries.GetCarriersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentNoteHandler commands.CreateShipmentNoteCommandHandler,
	createCarrierShipmentHandler commands.CreateCarrierShipmentCommandHandler,
	bookCarrierShipmentHandler commands.BookCarrierShipmentCommandHandler,
	cancelShipmentHandler commands.CancelShipmentCommandHandler,
	getShipperHandler queries.GetShipperQueryHandler,
	getRecipientHandler queries.GetRecipientQueryHandler,
	getDeliveryItemsHandler queries.GetDeliveryItemsQueryHandler,
	getCarriersHandler queries.GetCarriersQueryHandler,
) *Server {
	return &Server{
		createShipmentNoteHandler:    createShipmentNoteHandler,
		createCarrierShipmentHandler: createCarrierShipmentHandler,
		bookCarrierShipmentHandler:   bookCarrierShipmentHandler,
		cancelShipmentHandler:        cancelShipmentHandler,
		getShipperHandler:            getShipperHandler,
		getRecipientHandler:          getRecipientHandler,
		getDeliveryItemsHandler:      getDeliveryItemsHandler,
		getCarriersHandler:           getCarriersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance. Middleware
// applies to the /api/v1 group only; the health probe stays open.
func (s *Server) RegisterRoutes(e *echo.Echo, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", middleware...)

	api.POST("/shipment-notes", s.CreateShipmentNote)
	api.POST("/shipment-notes/:id/carrier-shipments", s.CreateCarrierShipment)
	api.POST("/shipment-notes/:id/book", s.BookCarrierShipment)
	api.POST("/shipment-notes/:id/cancel", s.CancelShipment)

	api.GET("/carriers", s.GetCarriers)
	api.GET("/delivery-notes/:id/shipper", s.GetShipper)
	api.GET("/delivery-notes/:id/recipient", s.GetRecipient)
	api.GET("/delivery-notes/:id/items", s.GetDeliveryItems)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateShipmentNote handles POST /api/v1/shipment-notes - creates a draft
// shipment note for a delivery note.
func (s *Server) CreateShipmentNote(ctx echo.Context) error {
	var request CreateShipmentNoteRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	deliveryNoteID, err := kernel.UUIDFromString(request.DeliveryNoteID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery note id: " + err.Error(),
		})
	}

	shipmentNoteID := kernel.NewUUID()

	cmd, err := commands.NewCreateShipmentNoteCommand(
		shipmentNoteID,
		deliveryNoteID,
		shipment.Carrier(request.Carrier),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment note data: " + err.Error(),
		})
	}

	if handleErr := s.createShipmentNoteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shipmentNoteID.String()})
}

// CreateCarrierShipment handles POST /api/v1/shipment-notes/:id/carrier-shipments -
// creates a draft carrier shipment for the note.
func (s *Server) CreateCarrierShipment(ctx echo.Context) error {
	shipmentNoteID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeInvalidID(ctx, err)
	}

	carrierShipmentID := kernel.NewUUID()

	cmd, err := commands.NewCreateCarrierShipmentCommand(carrierShipmentID, shipmentNoteID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid carrier shipment data: " + err.Error(),
		})
	}

	if handleErr := s.createCarrierShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: carrierShipmentID.String()})
}

// BookCarrierShipment handles POST /api/v1/shipment-notes/:id/book - books
// the note's carrier shipment with the external provider.
func (s *Server) BookCarrierShipment(ctx echo.Context) error {
	shipmentNoteID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeInvalidID(ctx, err)
	}

	cmd, err := commands.NewBookCarrierShipmentCommand(shipmentNoteID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid booking data: " + err.Error(),
		})
	}

	if handleErr := s.bookCarrierShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelShipment handles POST /api/v1/shipment-notes/:id/cancel - cancels
// the shipment note and its carrier booking if one exists.
func (s *Server) CancelShipment(ctx echo.Context) error {
	shipmentNoteID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeInvalidID(ctx, err)
	}

	cmd, err := commands.NewCancelShipmentCommand(shipmentNoteID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cancellation data: " + err.Error(),
		})
	}

	if handleErr := s.cancelShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCarriers handles GET /api/v1/carriers - lists supported carrier identifiers.
func (s *Server) GetCarriers(ctx echo.Context) error {
	query := queries.NewGetCarriersQuery()

	carriers, err := s.getCarriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]string, len(carriers))
	for i, carrier := range carriers {
		response[i] = carrier.String()
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipper handles GET /api/v1/delivery-notes/:id/shipper - assembles the
// shipper participant for the delivery note.
func (s *Server) GetShipper(ctx echo.Context) error {
	deliveryNoteID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeInvalidID(ctx, err)
	}

	query, err := queries.NewGetShipperQuery(deliveryNoteID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query data: " + err.Error(),
		})
	}

	shipper, err := s.getShipperHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, participantToResponse(shipper))
}

// GetRecipient handles GET /api/v1/delivery-notes/:id/recipient - assembles
// the recipient participant for the delivery note.
func (s *Server) GetRecipient(ctx echo.Context) error {
	deliveryNoteID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeInvalidID(ctx, err)
	}

	query, err := queries.NewGetRecipientQuery(deliveryNoteID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query data: " + err.Error(),
		})
	}

	recipient, err := s.getRecipientHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, participantToResponse(recipient))
}

// GetDeliveryItems handles GET /api/v1/delivery-notes/:id/items - lists the
// delivery note's line items in document order.
func (s *Server) GetDeliveryItems(ctx echo.Context) error {
	deliveryNoteID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeInvalidID(ctx, err)
	}

	query, err := queries.NewGetDeliveryItemsQuery(deliveryNoteID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query data: " + err.Error(),
		})
	}

	items, err := s.getDeliveryItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemsToResponse(items))
}

// writeInvalidID responds with a 400 for an unparseable :id path parameter.
func writeInvalidID(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid id: " + err.Error(),
	})
}

// writeError maps application errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrCarrierUnavailable),
		errors.Is(err, commands.ErrNoCarrierGateway):
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
