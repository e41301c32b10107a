// Package http exposes the marketplace lifecycle commands and queries as a
// JSON API under /api/v1.
package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	makeOfferHandler             commands.MakeOfferCommandHandler
	giveDiscountHandler          commands.GiveDiscountCommandHandler
	requestDiscountHandler       commands.RequestDiscountCommandHandler
	cancelDiscountRequestHandler commands.CancelDiscountRequestCommandHandler
	cancelRequestHandler         commands.CancelRequestCommandHandler
	cancelOrderHandler           commands.CancelOrderCommandHandler
	confirmRequestHandler        commands.ConfirmRequestCommandHandler
	makePaymentHandler           commands.MakePaymentCommandHandler
	markRequestShownHandler      commands.MarkRequestShownCommandHandler

	// Query handlers
	getActiveOrdersHandler   queries.GetActiveOrdersQueryHandler
	getOrderOffersHandler    queries.GetOrderOffersQueryHandler
	getUnseenRequestsHandler queries.GetUnseenRequestsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	makeOfferHandler commands.MakeOfferCommandHandler,
	giveDiscountHandler commands.GiveDiscountCommandHandler,
	requestDiscountHandler commands.RequestDiscountCommandHandler,
	cancelDiscountRequestHandler commands.CancelDiscountRequestCommandHandler,
	cancelRequestHandler commands.CancelRequestCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	confirmRequestHandler commands.ConfirmRequestCommandHandler,
	makePaymentHandler commands.MakePaymentCommandHandler,
	markRequestShownHandler commands.MarkRequestShownCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderOffersHandler queries.GetOrderOffersQueryHandler,
	getUnseenRequestsHandler queries.GetUnseenRequestsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		makeOfferHandler:             makeOfferHandler,
		giveDiscountHandler:          giveDiscountHandler,
		requestDiscountHandler:       requestDiscountHandler,
		cancelDiscountRequestHandler: cancelDiscountRequestHandler,
		cancelRequestHandler:         cancelRequestHandler,
		cancelOrderHandler:           cancelOrderHandler,
		confirmRequestHandler:        confirmRequestHandler,
		makePaymentHandler:           makePaymentHandler,
		markRequestShownHandler:      markRequestShownHandler,
		getActiveOrdersHandler:       getActiveOrdersHandler,
		getOrderOffersHandler:        getOrderOffersHandler,
		getUnseenRequestsHandler:     getUnseenRequestsHandler,
	}
}

// RegisterRoutes binds all endpoints on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:order_id/cancel", s.CancelOrder)
	api.POST("/orders/:order_id/payment", s.MakePayment)
	api.GET("/orders/:order_id/offers", s.GetOrderOffers)
	api.POST("/orders/:order_id/requests/:request_id/confirm", s.ConfirmRequest)
	api.POST("/orders/:order_id/requests/:request_id/discount", s.RequestDiscount)

	api.GET("/clients/:client_id/orders/active", s.GetActiveOrders)

	api.GET("/vendors/:vendor_id/requests/unseen", s.GetUnseenRequests)
	api.POST("/requests/:request_id/offer", s.MakeOffer)
	api.POST("/requests/:request_id/discount", s.GiveDiscount)
	api.POST("/requests/:request_id/discount/decline", s.CancelDiscountRequest)
	api.POST("/requests/:request_id/cancel", s.CancelRequest)
	api.POST("/requests/:request_id/seen", s.MarkRequestShown)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body CreateOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, err := kernel.UUIDFromString(body.ClientID)
	if err != nil {
		return badRequest(ctx, "client_id is not a valid UUID")
	}

	materialID, err := kernel.UUIDFromString(body.MaterialID)
	if err != nil {
		return badRequest(ctx, "material_id is not a valid UUID")
	}

	deliveryPoint, err := kernel.NewGeoPoint(body.Latitude, body.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, materialID, clientID, deliveryPoint, body.Quantity, body.Comment)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// CancelOrder handles POST /api/v1/orders/:order_id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "order_id is not a valid UUID")
	}

	var body ActorRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, err := kernel.UUIDFromString(body.ClientID)
	if err != nil {
		return badRequest(ctx, "client_id is not a valid UUID")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, clientID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MakePayment handles POST /api/v1/orders/:order_id/payment.
func (s *Server) MakePayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "order_id is not a valid UUID")
	}

	var body ActorRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, err := kernel.UUIDFromString(body.ClientID)
	if err != nil {
		return badRequest(ctx, "client_id is not a valid UUID")
	}

	cmd, err := commands.NewMakePaymentCommand(orderID, clientID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.makePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmRequest handles POST /api/v1/orders/:order_id/requests/:request_id/confirm.
func (s *Server) ConfirmRequest(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "order_id is not a valid UUID")
	}

	requestID, err := kernel.UUIDFromString(ctx.Param("request_id"))
	if err != nil {
		return badRequest(ctx, "request_id is not a valid UUID")
	}

	var body ConfirmRequestRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, err := kernel.UUIDFromString(body.ClientID)
	if err != nil {
		return badRequest(ctx, "client_id is not a valid UUID")
	}

	cmd, err := commands.NewConfirmRequestCommand(orderID, clientID, requestID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.confirmRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestDiscount handles POST /api/v1/orders/:order_id/requests/:request_id/discount.
func (s *Server) RequestDiscount(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "order_id is not a valid UUID")
	}

	requestID, err := kernel.UUIDFromString(ctx.Param("request_id"))
	if err != nil {
		return badRequest(ctx, "request_id is not a valid UUID")
	}

	cmd, err := commands.NewRequestDiscountCommand(requestID, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.requestDiscountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/clients/:client_id/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("client_id"))
	if err != nil {
		return badRequest(ctx, "client_id is not a valid UUID")
	}

	query, err := queries.NewGetActiveOrdersQuery(clientID)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrder{
			ID:         o.ID.String(),
			MaterialID: o.MaterialID.String(),
			Quantity:   o.Quantity,
			Status:     o.Status,
			Latitude:   o.Latitude,
			Longitude:  o.Longitude,
			Comment:    o.Comment,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderOffers handles GET /api/v1/orders/:order_id/offers.
func (s *Server) GetOrderOffers(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "order_id is not a valid UUID")
	}

	query, err := queries.NewGetOrderOffersQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	offers, err := s.getOrderOffersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Offer, len(offers))
	for i, o := range offers {
		response[i] = Offer{
			ID:              o.ID.String(),
			VendorID:        o.VendorID.String(),
			Status:          o.Status,
			DistanceKm:      o.DistanceKm,
			DurationMinutes: o.DurationMinutes,
			MaterialPrice:   o.MaterialPrice,
			DeliveryPrice:   o.DeliveryPrice,
			DiscountPercent: o.DiscountPercent,
			IsDiscounted:    o.IsDiscounted,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUnseenRequests handles GET /api/v1/vendors/:vendor_id/requests/unseen.
func (s *Server) GetUnseenRequests(ctx echo.Context) error {
	vendorID, err := kernel.UUIDFromString(ctx.Param("vendor_id"))
	if err != nil {
		return badRequest(ctx, "vendor_id is not a valid UUID")
	}

	query, err := queries.NewGetUnseenRequestsQuery(vendorID)
	if err != nil {
		return writeError(ctx, err)
	}

	requests, err := s.getUnseenRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]UnseenRequest, len(requests))
	for i, r := range requests {
		response[i] = UnseenRequest{
			ID:              r.ID.String(),
			OrderID:         r.OrderID.String(),
			StorageID:       r.StorageID.String(),
			DistanceKm:      r.DistanceKm,
			DurationMinutes: r.DurationMinutes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MakeOffer handles POST /api/v1/requests/:request_id/offer.
func (s *Server) MakeOffer(ctx echo.Context) error {
	requestID, err := kernel.UUIDFromString(ctx.Param("request_id"))
	if err != nil {
		return badRequest(ctx, "request_id is not a valid UUID")
	}

	var body MakeOfferRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	vendorID, err := kernel.UUIDFromString(body.VendorID)
	if err != nil {
		return badRequest(ctx, "vendor_id is not a valid UUID")
	}

	cmd, err := commands.NewMakeOfferCommand(vendorID, requestID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.makeOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GiveDiscount handles POST /api/v1/requests/:request_id/discount.
func (s *Server) GiveDiscount(ctx echo.Context) error {
	requestID, err := kernel.UUIDFromString(ctx.Param("request_id"))
	if err != nil {
		return badRequest(ctx, "request_id is not a valid UUID")
	}

	var body GiveDiscountRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	vendorID, err := kernel.UUIDFromString(body.VendorID)
	if err != nil {
		return badRequest(ctx, "vendor_id is not a valid UUID")
	}

	cmd, err := commands.NewGiveDiscountCommand(vendorID, requestID, body.Percent)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.giveDiscountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDiscountRequest handles POST /api/v1/requests/:request_id/discount/decline.
func (s *Server) CancelDiscountRequest(ctx echo.Context) error {
	requestID, err := kernel.UUIDFromString(ctx.Param("request_id"))
	if err != nil {
		return badRequest(ctx, "request_id is not a valid UUID")
	}

	var body ActorRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	vendorID, err := kernel.UUIDFromString(body.VendorID)
	if err != nil {
		return badRequest(ctx, "vendor_id is not a valid UUID")
	}

	cmd, err := commands.NewCancelDiscountRequestCommand(vendorID, requestID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelDiscountRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelRequest handles POST /api/v1/requests/:request_id/cancel.
func (s *Server) CancelRequest(ctx echo.Context) error {
	requestID, err := kernel.UUIDFromString(ctx.Param("request_id"))
	if err != nil {
		return badRequest(ctx, "request_id is not a valid UUID")
	}

	var body ActorRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	vendorID, err := kernel.UUIDFromString(body.VendorID)
	if err != nil {
		return badRequest(ctx, "vendor_id is not a valid UUID")
	}

	cmd, err := commands.NewCancelRequestCommand(vendorID, requestID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkRequestShown handles POST /api/v1/requests/:request_id/seen.
func (s *Server) MarkRequestShown(ctx echo.Context) error {
	requestID, err := kernel.UUIDFromString(ctx.Param("request_id"))
	if err != nil {
		return badRequest(ctx, "request_id is not a valid UUID")
	}

	var body ActorRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	vendorID, err := kernel.UUIDFromString(body.VendorID)
	if err != nil {
		return badRequest(ctx, "vendor_id is not a valid UUID")
	}

	cmd, err := commands.NewMarkRequestShownCommand(vendorID, requestID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markRequestShownHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
