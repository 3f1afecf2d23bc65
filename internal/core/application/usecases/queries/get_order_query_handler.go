package queries

import (
	"context"
	"database/sql"
	"errors"

	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/core/domain/model/order"
	"salesdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID()

	var (
		resp      GetOrderQueryResponse
		status    int
		carrierID uuid.NullUUID
	)
	err := db.Raw(`
		SELECT
			reference,
			status,
			carrier_id,
			easypost_oca_rate_id,
			easypost_oca_shipment_id,
			easypost_oca_carrier_name
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row().Scan(
		&resp.Reference,
		&status,
		&carrierID,
		&resp.EasypostRateID,
		&resp.EasypostShipmentID,
		&resp.EasypostCarrierName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return GetOrderQueryResponse{}, err
	}

	resp.ID = orderID
	resp.Status = order.Status(status).String()
	if carrierID.Valid {
		cID, idErr := kernel.UUIDFromBytes(carrierID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.CarrierID = &cID
	}

	resp.Lines, err = h.lines(ctx, orderID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.AmountTotal = decimal.Zero
	for _, l := range resp.Lines {
		resp.AmountTotal = resp.AmountTotal.Add(l.Subtotal)
	}

	return resp, nil
}

func (h GetOrderQueryHandler) lines(ctx context.Context, orderID kernel.UUID) ([]GetOrderLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			product_name,
			quantity,
			price_unit,
			is_delivery
		FROM order_lines
		WHERE order_id = ?
		ORDER BY sequence
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]GetOrderLineResponse, 0)
	for rows.Next() {
		var (
			l  GetOrderLineResponse
			id uuid.UUID
		)

		if err = rows.Scan(&id, &l.Name, &l.ProductName, &l.Quantity, &l.PriceUnit, &l.IsDelivery); err != nil {
			return nil, err
		}

		if l.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		l.Subtotal = l.PriceUnit.Mul(decimal.NewFromInt(int64(l.Quantity)))

		lines = append(lines, l)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
