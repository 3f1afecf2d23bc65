package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"salesdelivery/internal/core/domain/model/carrier"
	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned for orders built without NewOrder
	// or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCarrierIsArchived is returned when creating a delivery line for an
	// archived carrier.
	ErrCarrierIsArchived = errors.New("carrier is archived")
)

// Order is the sales order aggregate root.
//
// Invariants:
//   - id is valid and reference is not blank
//   - at most one delivery line exists
//   - carrierID is set whenever a delivery line exists
//   - lines change only while the status is Draft or Sale
type Order struct {
	id        kernel.UUID
	reference string
	status    Status

	// carrierID is the delivery method of the current delivery line.
	carrierID *kernel.UUID

	lines    []*Line
	shipment Shipment

	domainEvents []DomainEvent

	isConstructed bool
}

// NewOrder creates a Draft order without lines.
func NewOrder(id kernel.UUID, reference string) (*Order, error) {
	o := &Order{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setReference(reference),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence. It validates the same
// invariants as NewOrder plus status/line consistency, and records no events.
func RestoreOrder(
	id kernel.UUID,
	reference string,
	status Status,
	carrierID *kernel.UUID,
	lines []*Line,
	shipment Shipment,
) (*Order, error) {
	o := &Order{
		shipment:      shipment,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setReference(reference),
		o.setStatus(status),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	if carrierID != nil {
		if err := carrierID.Validate(); err != nil {
			return nil, err
		}
		cID := *carrierID
		o.carrierID = &cID
	}

	if o.DeliveryLine() != nil && o.carrierID == nil {
		return nil, errs.NewValueIsRequiredError("carrier of delivery line")
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Reference is the human readable order number, e.g. "S00042".
func (o *Order) Reference() string {
	return o.reference
}

func (o *Order) Status() Status {
	return o.status
}

// CarrierID returns the delivery method of the delivery line, nil if none.
func (o *Order) CarrierID() *kernel.UUID {
	return o.carrierID
}

// Lines returns all lines in creation order.
func (o *Order) Lines() []*Line {
	out := make([]*Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// DeliveryLine returns the delivery line, nil if none was created.
func (o *Order) DeliveryLine() *Line {
	for _, l := range o.lines {
		if l.isDelivery {
			return l
		}
	}
	return nil
}

func (o *Order) Shipment() Shipment {
	return o.shipment
}

// AmountTotal sums the subtotals of all lines.
func (o *Order) AmountTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// AddLine appends a product line named after the product.
func (o *Order) AddLine(id kernel.UUID, productName string, quantity int, priceUnit decimal.Decimal) (*Line, error) {
	if err := o.status.ValidateEditable(); err != nil {
		return nil, err
	}

	line, err := RestoreLine(id, productName, productName, quantity, priceUnit, false)
	if err != nil {
		return nil, err
	}

	o.lines = append(o.lines, line)
	return line, nil
}

// CreateDeliveryLine is the standard delivery-line routine: it drops any
// existing delivery line, records the carrier on the order and appends a
// single-unit line named after the carrier at priceUnit.
func (o *Order) CreateDeliveryLine(c *carrier.Carrier, priceUnit decimal.Decimal) (*Line, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if !c.Active() {
		return nil, fmt.Errorf("%w: %s", ErrCarrierIsArchived, c.Name())
	}
	if err := o.status.ValidateEditable(); err != nil {
		return nil, err
	}

	line, err := RestoreLine(kernel.NewUUID(), c.Name(), c.Name(), 1, priceUnit, true)
	if err != nil {
		return nil, err
	}

	o.removeDeliveryLine()
	carrierID := c.ID()
	o.carrierID = &carrierID
	o.lines = append(o.lines, line)

	return line, nil
}

// SetShipment overwrites the shipment metadata. A change of the carrier
// name is recorded as a ShipmentCarrierChanged event.
func (o *Order) SetShipment(s Shipment) {
	if !equal(o.shipment.carrierName, s.carrierName) {
		o.domainEvents = append(o.domainEvents, ShipmentCarrierChanged{
			OrderID:    o.id,
			Previous:   clone(o.shipment.carrierName),
			Current:    clone(s.carrierName),
			OccurredAt: time.Now().UTC(),
		})
	}
	o.shipment = s
}

// Confirm turns a quotation into a sales order.
func (o *Order) Confirm() error {
	next, err := o.status.Confirm()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Lock marks a confirmed order as done.
func (o *Order) Lock() error {
	next, err := o.status.Lock()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) Cancel() error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// DomainEvents returns events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(o.domainEvents))
	copy(out, o.domainEvents)
	return out
}

func (o *Order) ClearDomainEvents() {
	o.domainEvents = nil
}

func (o *Order) removeDeliveryLine() {
	kept := o.lines[:0]
	for _, l := range o.lines {
		if !l.isDelivery {
			kept = append(kept, l)
		}
	}
	o.lines = kept
	o.carrierID = nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setReference(reference string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	o.reference = reference
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	deliveries := 0
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
		if l.isDelivery {
			deliveries++
		}
	}
	if deliveries > 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"lines",
			fmt.Errorf("%d delivery lines, at most one allowed", deliveries),
		)
	}
	o.lines = append([]*Line(nil), lines...)
	return nil
}
