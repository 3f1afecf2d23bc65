package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"salesdelivery/api"
	"salesdelivery/internal/core/application/usecases/commands"
	"salesdelivery/internal/core/application/usecases/queries"
	"salesdelivery/internal/core/domain/model/carrier"
	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/core/domain/model/order"
	"salesdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeCreateOrder struct {
	got commands.CreateOrderCommand
	err error
}

func (f *fakeCreateOrder) Handle(_ context.Context, cmd commands.CreateOrderCommand) error {
	f.got = cmd
	return f.err
}

type fakeAddOrderLine struct {
	got commands.AddOrderLineCommand
	err error
}

func (f *fakeAddOrderLine) Handle(_ context.Context, cmd commands.AddOrderLineCommand) error {
	f.got = cmd
	return f.err
}

type fakeConfirmOrder struct {
	err error
}

func (f *fakeConfirmOrder) Handle(_ context.Context, _ commands.ConfirmOrderCommand) error {
	return f.err
}

type fakeLockOrder struct {
	got commands.LockOrderCommand
	err error
}

func (f *fakeLockOrder) Handle(_ context.Context, cmd commands.LockOrderCommand) error {
	f.got = cmd
	return f.err
}

type fakeCancelOrder struct {
	got commands.CancelOrderCommand
	err error
}

func (f *fakeCancelOrder) Handle(_ context.Context, cmd commands.CancelOrderCommand) error {
	f.got = cmd
	return f.err
}

type fakeArchiveCarrier struct {
	got commands.ArchiveCarrierCommand
	err error
}

func (f *fakeArchiveCarrier) Handle(_ context.Context, cmd commands.ArchiveCarrierCommand) error {
	f.got = cmd
	return f.err
}

type fakeSetDeliveryLine struct {
	got commands.SetDeliveryLineCommand
	err error
}

func (f *fakeSetDeliveryLine) Handle(
	_ context.Context,
	cmd commands.SetDeliveryLineCommand,
) (commands.SetDeliveryLineResult, error) {
	f.got = cmd
	if f.err != nil {
		return commands.SetDeliveryLineResult{}, f.err
	}

	name := "EasyPost OCA"
	if cmd.Shipment().CarrierName != "" {
		name += " - " + cmd.Shipment().CarrierName
	}
	return commands.SetDeliveryLineResult{LineID: kernel.NewUUID(), Name: name}, nil
}

type fakeCreateCarrier struct {
	err error
}

func (f *fakeCreateCarrier) Handle(_ context.Context, _ commands.CreateCarrierCommand) error {
	return f.err
}

type fakeGetOrder struct {
	resp queries.GetOrderQueryResponse
	err  error
}

func (f *fakeGetOrder) Handle(_ context.Context, _ queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
	return f.resp, f.err
}

type fakeGetAllCarriers struct {
	resp []queries.GetAllCarriersQueryResponse
	err  error
}

func (f *fakeGetAllCarriers) Handle(
	_ context.Context,
	_ queries.GetAllCarriersQuery,
) ([]queries.GetAllCarriersQueryResponse, error) {
	return f.resp, f.err
}

type fakes struct {
	createOrder     *fakeCreateOrder
	addOrderLine    *fakeAddOrderLine
	confirmOrder    *fakeConfirmOrder
	lockOrder       *fakeLockOrder
	cancelOrder     *fakeCancelOrder
	setDeliveryLine *fakeSetDeliveryLine
	createCarrier   *fakeCreateCarrier
	archiveCarrier  *fakeArchiveCarrier
	getOrder        *fakeGetOrder
	getAllCarriers  *fakeGetAllCarriers
}

func newTestRouter(t *testing.T) (*echo.Echo, fakes) {
	t.Helper()

	doc, err := api.Load()
	require.NoError(t, err)

	f := fakes{
		createOrder:     &fakeCreateOrder{},
		addOrderLine:    &fakeAddOrderLine{},
		confirmOrder:    &fakeConfirmOrder{},
		lockOrder:       &fakeLockOrder{},
		cancelOrder:     &fakeCancelOrder{},
		setDeliveryLine: &fakeSetDeliveryLine{},
		createCarrier:   &fakeCreateCarrier{},
		archiveCarrier:  &fakeArchiveCarrier{},
		getOrder:        &fakeGetOrder{},
		getAllCarriers:  &fakeGetAllCarriers{},
	}

	server := NewServer(Handlers{
		CreateOrder:     f.createOrder,
		AddOrderLine:    f.addOrderLine,
		ConfirmOrder:    f.confirmOrder,
		LockOrder:       f.lockOrder,
		CancelOrder:     f.cancelOrder,
		SetDeliveryLine: f.setDeliveryLine,
		CreateCarrier:   f.createCarrier,
		ArchiveCarrier:  f.archiveCarrier,
		GetOrder:        f.getOrder,
		GetAllCarriers:  f.getAllCarriers,
	}, doc, zap.NewNop())

	return NewRouter(server, zap.NewNop()), f
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) Error {
	t.Helper()

	var body Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func Test_Health(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func Test_OpenAPIDocumentIsServed(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(e, http.MethodGet, "/openapi.yaml", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/orders/{order_id}/delivery-line")
}

func Test_CreateOrder(t *testing.T) {
	e, f := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/v1/orders", `{"reference":"S00042"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body Created
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, f.createOrder.got.OrderID().Bytes(), body.ID)
	assert.Equal(t, "S00042", f.createOrder.got.Reference())
}

func Test_CreateOrder_RejectsBodiesOutsideTheSchema(t *testing.T) {
	tests := map[string]string{
		"missing reference": `{}`,
		"empty reference":   `{"reference":""}`,
		"unknown field":     `{"reference":"S1","note":"x"}`,
		"not json":          `reference=S1`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			e, _ := newTestRouter(t)

			rec := do(e, http.MethodPost, "/api/v1/orders", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
		})
	}
}

func Test_CreateOrder_DuplicateReferenceIsConflict(t *testing.T) {
	e, f := newTestRouter(t)
	f.createOrder.err = gorm.ErrDuplicatedKey

	rec := do(e, http.MethodPost, "/api/v1/orders", `{"reference":"S00042"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func Test_AddOrderLine(t *testing.T) {
	e, f := newTestRouter(t)
	orderID := kernel.NewUUID()

	rec := do(e, http.MethodPost, "/api/v1/orders/"+orderID.String()+"/lines",
		`{"product_name":"Desk","quantity":2,"price_unit":"150.50"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, orderID.IsEqual(f.addOrderLine.got.OrderID()))
	assert.Equal(t, 2, f.addOrderLine.got.Quantity())
	assert.True(t, decimal.RequireFromString("150.5").Equal(f.addOrderLine.got.PriceUnit()))
}

func Test_AddOrderLine_InvalidPathParameter(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/v1/orders/not-a-uuid/lines",
		`{"product_name":"Desk","quantity":2,"price_unit":"150.50"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_AddOrderLine_UnknownOrderIsNotFound(t *testing.T) {
	e, f := newTestRouter(t)
	f.addOrderLine.err = errs.NewObjectNotFoundError("order", "x")

	rec := do(e, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/lines",
		`{"product_name":"Desk","quantity":1,"price_unit":"1"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_ConfirmOrder(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/confirm", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func Test_LockOrder(t *testing.T) {
	e, f := newTestRouter(t)
	orderID := kernel.NewUUID()

	rec := do(e, http.MethodPost, "/api/v1/orders/"+orderID.String()+"/lock", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, orderID.IsEqual(f.lockOrder.got.OrderID()))
}

func Test_LockOrder_InvalidTransition(t *testing.T) {
	e, f := newTestRouter(t)
	f.lockOrder.err = errs.NewValueIsInvalidErrorWithCause("status is invalid", errors.New("draft orders cannot be locked"))

	rec := do(e, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/lock", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_CancelOrder(t *testing.T) {
	e, f := newTestRouter(t)
	orderID := kernel.NewUUID()

	rec := do(e, http.MethodPost, "/api/v1/orders/"+orderID.String()+"/cancel", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, orderID.IsEqual(f.cancelOrder.got.OrderID()))
}

func Test_CancelOrder_NotFound(t *testing.T) {
	e, f := newTestRouter(t)
	f.cancelOrder.err = errs.NewObjectNotFoundError("order", "x")

	rec := do(e, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/cancel", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_ArchiveCarrier(t *testing.T) {
	e, f := newTestRouter(t)
	carrierID := kernel.NewUUID()

	rec := do(e, http.MethodPost, "/api/v1/carriers/"+carrierID.String()+"/archive", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, carrierID.IsEqual(f.archiveCarrier.got.CarrierID()))
}

func Test_ArchiveCarrier_InvalidPathParameter(t *testing.T) {
	e, f := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/v1/carriers/123/archive", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
	assert.Equal(t, commands.ArchiveCarrierCommand{}, f.archiveCarrier.got)
}

func Test_SetDeliveryLine_PassesShipmentValues(t *testing.T) {
	e, f := newTestRouter(t)
	orderID := kernel.NewUUID()
	carrierID := kernel.NewUUID()

	rec := do(e, http.MethodPost, "/api/v1/orders/"+orderID.String()+"/delivery-line", `{
		"carrier_id":"`+carrierID.String()+`",
		"price_unit":"12.40",
		"rate_id":"rate_1",
		"shipment_id":"shp_1",
		"carrier_name":"USPS"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body DeliveryLine
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "EasyPost OCA - USPS", body.Name)

	got := f.setDeliveryLine.got
	assert.True(t, orderID.IsEqual(got.OrderID()))
	assert.True(t, carrierID.IsEqual(got.CarrierID()))
	assert.Equal(t, "rate_1", got.Shipment().RateID)
	assert.Equal(t, "shp_1", got.Shipment().ShipmentID)
	assert.Equal(t, "USPS", got.Shipment().CarrierName)
}

func Test_SetDeliveryLine_ShipmentValuesAreOptional(t *testing.T) {
	e, f := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/delivery-line",
		`{"carrier_id":"`+kernel.NewUUID().String()+`","price_unit":"0"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, f.setDeliveryLine.got.Shipment().CarrierName)
}

func Test_SetDeliveryLine_Errors(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"unknown carrier":  {errs.NewObjectNotFoundError("carrier", "x"), http.StatusNotFound},
		"archived carrier": {order.ErrCarrierIsArchived, http.StatusConflict},
		"storage failure":  {errors.New("connection reset"), http.StatusInternalServerError},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			e, f := newTestRouter(t)
			f.setDeliveryLine.err = tc.err

			rec := do(e, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/delivery-line",
				`{"carrier_id":"`+kernel.NewUUID().String()+`","price_unit":"5"}`)

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func Test_SetDeliveryLine_InternalErrorIsHidden(t *testing.T) {
	e, f := newTestRouter(t)
	f.setDeliveryLine.err = errors.New("pq: password authentication failed")

	rec := do(e, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/delivery-line",
		`{"carrier_id":"`+kernel.NewUUID().String()+`","price_unit":"5"}`)

	assert.Equal(t, "internal server error", decodeError(t, rec).Message)
}

func Test_GetOrder(t *testing.T) {
	e, f := newTestRouter(t)
	orderID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	carrierName := "USPS"
	f.getOrder.resp = queries.GetOrderQueryResponse{
		ID:                  orderID,
		Reference:           "S00042",
		Status:              "sale",
		CarrierID:           &carrierID,
		EasypostCarrierName: &carrierName,
		AmountTotal:         decimal.RequireFromString("12.4"),
		Lines: []queries.GetOrderLineResponse{{
			ID:          kernel.NewUUID(),
			Name:        "EasyPost OCA - USPS",
			ProductName: "EasyPost OCA",
			Quantity:    1,
			PriceUnit:   decimal.RequireFromString("12.4"),
			Subtotal:    decimal.RequireFromString("12.4"),
			IsDelivery:  true,
		}},
	}

	rec := do(e, http.MethodGet, "/api/v1/orders/"+orderID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "USPS", body["easypost_oca_carrier_name"])
	assert.Nil(t, body["easypost_oca_rate_id"])
	assert.Equal(t, "12.40", body["amount_total"])
	assert.Equal(t, carrierID.String(), body["carrier_id"])

	lines, ok := body["lines"].([]any)
	require.True(t, ok)
	require.Len(t, lines, 1)
	assert.Equal(t, "EasyPost OCA - USPS", lines[0].(map[string]any)["name"])
}

func Test_GetOrder_NotFound(t *testing.T) {
	e, f := newTestRouter(t)
	f.getOrder.err = errs.NewObjectNotFoundError("order", "x")

	rec := do(e, http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_GetCarriers(t *testing.T) {
	e, f := newTestRouter(t)
	f.getAllCarriers.resp = []queries.GetAllCarriersQueryResponse{{
		ID:           kernel.NewUUID(),
		Name:         "EasyPost OCA",
		DeliveryType: carrier.EasypostOCA,
		Active:       true,
	}}

	rec := do(e, http.MethodGet, "/api/v1/carriers", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []Carrier
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "easypost_oca", body[0].DeliveryType)
	assert.Empty(t, body[0].Services)
}

func Test_CreateCarrier_UnknownDeliveryType(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/v1/carriers", `{"name":"X","delivery_type":"ups_direct"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_CreateCarrier(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/v1/carriers",
		`{"name":"EasyPost OCA","delivery_type":"easypost_oca","services":["Priority"]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
