package order

// Shipment is the EasyPost metadata kept on an order. Each field is
// optional; a nil field was not supplied by the rating call.
type Shipment struct {
	rateID      *string
	shipmentID  *string
	carrierName *string
}

// NewShipment builds a Shipment. Empty strings are absent; any other value,
// whitespace included, is kept as supplied.
func NewShipment(rateID, shipmentID, carrierName string) Shipment {
	return Shipment{
		rateID:      optional(rateID),
		shipmentID:  optional(shipmentID),
		carrierName: optional(carrierName),
	}
}

// RestoreShipment rebuilds a Shipment from nullable columns.
func RestoreShipment(rateID, shipmentID, carrierName *string) Shipment {
	return Shipment{
		rateID:      optional(deref(rateID)),
		shipmentID:  optional(deref(shipmentID)),
		carrierName: optional(deref(carrierName)),
	}
}

func (s Shipment) RateID() *string {
	return clone(s.rateID)
}

func (s Shipment) ShipmentID() *string {
	return clone(s.shipmentID)
}

func (s Shipment) CarrierName() *string {
	return clone(s.carrierName)
}

// IsEmpty reports whether no field is set.
func (s Shipment) IsEmpty() bool {
	return s.rateID == nil && s.shipmentID == nil && s.carrierName == nil
}

func (s Shipment) IsEqual(other Shipment) bool {
	return equal(s.rateID, other.rateID) &&
		equal(s.shipmentID, other.shipmentID) &&
		equal(s.carrierName, other.carrierName)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func clone(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func equal(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
