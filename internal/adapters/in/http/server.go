// Package http is the Echo REST adapter. It translates requests into
// commands and queries and maps their results and errors to JSON.
package http

import (
	"context"
	"net/http"

	"salesdelivery/internal/core/application/usecases/commands"
	"salesdelivery/internal/core/application/usecases/queries"
	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/core/domain/services"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type (
	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	addOrderLineHandler interface {
		Handle(ctx context.Context, cmd commands.AddOrderLineCommand) error
	}
	confirmOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ConfirmOrderCommand) error
	}
	lockOrderHandler interface {
		Handle(ctx context.Context, cmd commands.LockOrderCommand) error
	}
	cancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}
	archiveCarrierHandler interface {
		Handle(ctx context.Context, cmd commands.ArchiveCarrierCommand) error
	}
	setDeliveryLineHandler interface {
		Handle(ctx context.Context, cmd commands.SetDeliveryLineCommand) (commands.SetDeliveryLineResult, error)
	}
	createCarrierHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCarrierCommand) error
	}
	getOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	getAllCarriersHandler interface {
		Handle(ctx context.Context, query queries.GetAllCarriersQuery) ([]queries.GetAllCarriersQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder     createOrderHandler
	AddOrderLine    addOrderLineHandler
	ConfirmOrder    confirmOrderHandler
	LockOrder       lockOrderHandler
	CancelOrder     cancelOrderHandler
	SetDeliveryLine setDeliveryLineHandler
	CreateCarrier   createCarrierHandler
	ArchiveCarrier  archiveCarrierHandler
	GetOrder        getOrderHandler
	GetAllCarriers  getAllCarriersHandler
}

// Server serves the REST operations registered by RegisterRoutes.
type Server struct {
	handlers  Handlers
	validator bodyValidator
	logger    *zap.Logger
}

func NewServer(handlers Handlers, doc *openapi3.T, logger *zap.Logger) *Server {
	return &Server{
		handlers:  handlers,
		validator: newBodyValidator(doc),
		logger:    logger.With(zap.String("component", "http")),
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := s.validator.bind(ctx, "NewOrder", &body); err != nil {
		return s.writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, body.Reference)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.Bytes()})
}

// GetOrder handles GET /api/v1/orders/{order_id}.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "order_id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(o))
}

// AddOrderLine handles POST /api/v1/orders/{order_id}/lines.
func (s *Server) AddOrderLine(ctx echo.Context) error {
	var body NewOrderLine
	if err := s.validator.bind(ctx, "NewOrderLine", &body); err != nil {
		return s.writeError(ctx, err)
	}

	id, err := pathUUID(ctx, "order_id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	priceUnit, err := parseMoney(body.PriceUnit)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAddOrderLineCommand(id, body.ProductName, body.Quantity, priceUnit)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.AddOrderLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.LineID().Bytes()})
}

// ConfirmOrder handles POST /api/v1/orders/{order_id}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "order_id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.ConfirmOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// LockOrder handles POST /api/v1/orders/{order_id}/lock.
func (s *Server) LockOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "order_id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewLockOrderCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.LockOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{order_id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "order_id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetDeliveryLine handles POST /api/v1/orders/{order_id}/delivery-line.
// rate_id, shipment_id and carrier_name are the EasyPost rating results
// supplied by the caller.
func (s *Server) SetDeliveryLine(ctx echo.Context) error {
	var body NewDeliveryLine
	if err := s.validator.bind(ctx, "NewDeliveryLine", &body); err != nil {
		return s.writeError(ctx, err)
	}

	id, err := pathUUID(ctx, "order_id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	carrierID, err := kernel.UUIDFromString(body.CarrierID.String())
	if err != nil {
		return s.writeError(ctx, err)
	}

	priceUnit, err := parseMoney(body.PriceUnit)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewSetDeliveryLineCommand(id, carrierID, priceUnit, services.ShipmentContext{
		RateID:      body.RateID,
		ShipmentID:  body.ShipmentID,
		CarrierName: body.CarrierName,
	})
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.handlers.SetDeliveryLine.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, DeliveryLine{
		LineID: result.LineID.Bytes(),
		Name:   result.Name,
	})
}

// GetCarriers handles GET /api/v1/carriers.
func (s *Server) GetCarriers(ctx echo.Context) error {
	carriers, err := s.handlers.GetAllCarriers.Handle(ctx.Request().Context(), queries.NewGetAllCarriersQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]Carrier, len(carriers))
	for i, c := range carriers {
		response[i] = Carrier{
			ID:           c.ID.Bytes(),
			Name:         c.Name,
			DeliveryType: c.DeliveryType.String(),
			Services:     c.Services,
			Active:       c.Active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCarrier handles POST /api/v1/carriers.
func (s *Server) CreateCarrier(ctx echo.Context) error {
	var body NewCarrier
	if err := s.validator.bind(ctx, "NewCarrier", &body); err != nil {
		return s.writeError(ctx, err)
	}

	carrierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCarrierCommand(carrierID, body.Name, body.DeliveryType, body.Services)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.CreateCarrier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: carrierID.Bytes()})
}

// ArchiveCarrier handles POST /api/v1/carriers/{carrier_id}/archive.
func (s *Server) ArchiveCarrier(ctx echo.Context) error {
	id, err := pathUUID(ctx, "carrier_id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewArchiveCarrierCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.ArchiveCarrier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func orderResponse(o queries.GetOrderQueryResponse) Order {
	lines := make([]OrderLine, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = OrderLine{
			ID:          l.ID.Bytes(),
			Name:        l.Name,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			PriceUnit:   l.PriceUnit.StringFixed(2),
			Subtotal:    l.Subtotal.StringFixed(2),
			IsDelivery:  l.IsDelivery,
		}
	}

	var carrierID *uuid.UUID
	if o.CarrierID != nil {
		id := o.CarrierID.Bytes()
		carrierID = &id
	}

	return Order{
		ID:                     o.ID.Bytes(),
		Reference:              o.Reference,
		Status:                 o.Status,
		CarrierID:              carrierID,
		EasypostOcaRateID:      o.EasypostRateID,
		EasypostOcaShipmentID:  o.EasypostShipmentID,
		EasypostOcaCarrierName: o.EasypostCarrierName,
		AmountTotal:            o.AmountTotal.StringFixed(2),
		Lines:                  lines,
	}
}

func parseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errInvalidRequest
	}
	return d, nil
}
