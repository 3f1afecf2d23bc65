package http

import (
	"github.com/google/uuid"
)

// Request and response bodies. Field names follow api/openapi.yaml.

type NewOrder struct {
	Reference string `json:"reference"`
}

type NewOrderLine struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	PriceUnit   string `json:"price_unit"`
}

type NewDeliveryLine struct {
	CarrierID   uuid.UUID `json:"carrier_id"`
	PriceUnit   string    `json:"price_unit"`
	RateID      string    `json:"rate_id,omitempty"`
	ShipmentID  string    `json:"shipment_id,omitempty"`
	CarrierName string    `json:"carrier_name,omitempty"`
}

type NewCarrier struct {
	Name         string   `json:"name"`
	DeliveryType string   `json:"delivery_type"`
	Services     []string `json:"services,omitempty"`
}

type Created struct {
	ID uuid.UUID `json:"id"`
}

type DeliveryLine struct {
	LineID uuid.UUID `json:"line_id"`
	Name   string    `json:"name"`
}

type OrderLine struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	PriceUnit   string    `json:"price_unit"`
	Subtotal    string    `json:"subtotal"`
	IsDelivery  bool      `json:"is_delivery"`
}

type Order struct {
	ID                     uuid.UUID   `json:"id"`
	Reference              string      `json:"reference"`
	Status                 string      `json:"status"`
	CarrierID              *uuid.UUID  `json:"carrier_id"`
	EasypostOcaRateID      *string     `json:"easypost_oca_rate_id"`
	EasypostOcaShipmentID  *string     `json:"easypost_oca_shipment_id"`
	EasypostOcaCarrierName *string     `json:"easypost_oca_carrier_name"`
	AmountTotal            string      `json:"amount_total"`
	Lines                  []OrderLine `json:"lines"`
}

type Carrier struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DeliveryType string    `json:"delivery_type"`
	Services     []string  `json:"services"`
	Active       bool      `json:"active"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
