package carrier

import (
	"fmt"

	"salesdelivery/internal/pkg/errs"
)

// DeliveryType is the carrier discriminant. Values are persisted as strings.
type DeliveryType string

const (
	// Fixed charges a flat price per order.
	Fixed DeliveryType = "fixed"

	// BaseOnRule prices delivery from weight/volume/price rules.
	BaseOnRule DeliveryType = "base_on_rule"

	// EasypostOCA rates and labels shipments through EasyPost. Orders
	// shipped with it keep the rate id, shipment id and carrier name.
	EasypostOCA DeliveryType = "easypost_oca"
)

// ParseDeliveryType maps a stored or user supplied value to a DeliveryType.
func ParseDeliveryType(s string) (DeliveryType, error) {
	t := DeliveryType(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t DeliveryType) Validate() error {
	switch t {
	case Fixed, BaseOnRule, EasypostOCA:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery type",
			fmt.Errorf("%q is not a known delivery type", string(t)),
		)
	}
}

func (t DeliveryType) String() string {
	return string(t)
}

// IsEasypost reports whether shipment metadata applies to this carrier.
func (t DeliveryType) IsEasypost() bool {
	return t == EasypostOCA
}
