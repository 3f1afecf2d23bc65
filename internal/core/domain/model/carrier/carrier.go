package carrier

import (
	"errors"
	"slices"
	"strings"

	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/pkg/errs"
)

// ErrCarrierIsNotConstructed is returned for carriers built without
// NewCarrier or RestoreCarrier.
var ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")

// Carrier is a delivery method an order can be shipped with.
//
// Invariants:
//   - id is valid
//   - name is not blank
//   - deliveryType is one of the known discriminants
//   - services hold no blank or duplicate entries
type Carrier struct {
	id           kernel.UUID
	name         string
	deliveryType DeliveryType

	// services are carrier service levels (e.g. "Ground", "Priority")
	// the integration may restrict rating to. Empty means no restriction.
	services []string

	active        bool
	isConstructed bool
}

// NewCarrier creates an active carrier.
func NewCarrier(id kernel.UUID, name string, deliveryType DeliveryType, services []string) (*Carrier, error) {
	return RestoreCarrier(id, name, deliveryType, services, true)
}

// RestoreCarrier rebuilds a carrier from persistence, applying the same
// validation as NewCarrier.
func RestoreCarrier(
	id kernel.UUID,
	name string,
	deliveryType DeliveryType,
	services []string,
	active bool,
) (*Carrier, error) {
	c := &Carrier{active: active, isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setDeliveryType(deliveryType),
		c.setServices(services),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Carrier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCarrierIsNotConstructed
	}
	return nil
}

func (c *Carrier) ID() kernel.UUID {
	return c.id
}

func (c *Carrier) Name() string {
	return c.name
}

func (c *Carrier) DeliveryType() DeliveryType {
	return c.deliveryType
}

func (c *Carrier) Active() bool {
	return c.active
}

// Services returns the service levels configured for rating, or nil when
// none are configured.
func (c *Carrier) Services() []string {
	if len(c.services) == 0 {
		return nil
	}
	return slices.Clone(c.services)
}

// HasServices reports whether rating is restricted to specific services.
func (c *Carrier) HasServices() bool {
	return len(c.services) > 0
}

func (c *Carrier) Archive() {
	c.active = false
}

func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Carrier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("carrier name")
	}
	c.name = name
	return nil
}

func (c *Carrier) setDeliveryType(t DeliveryType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.deliveryType = t
	return nil
}

func (c *Carrier) setServices(services []string) error {
	cleaned := make([]string, 0, len(services))
	for _, s := range services {
		s = strings.TrimSpace(s)
		if s == "" {
			return errs.NewValueIsInvalidError("carrier service is blank")
		}
		if slices.Contains(cleaned, s) {
			return errs.NewValueIsInvalidError("carrier service " + s + " is duplicated")
		}
		cleaned = append(cleaned, s)
	}
	c.services = cleaned
	return nil
}
