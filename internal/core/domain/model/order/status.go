package order

import (
	"fmt"

	"salesdelivery/internal/pkg/errs"
)

// Status is the lifecycle state of an order, persisted as an integer.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota

	// Draft is a quotation; lines and delivery can still change.
	Draft

	// Sale is a confirmed order. Delivery may still be re-rated.
	Sale

	// Done orders are locked.
	Done

	// Cancelled orders are final.
	Cancelled
)

func statusNames() map[Status]string {
	return map[Status]string{
		Draft:     "Draft",
		Sale:      "Sale",
		Done:      "Done",
		Cancelled: "Cancelled",
	}
}

func (s Status) Validate() error {
	if _, ok := statusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames()[s]; ok {
		return name
	}
	return "Unknown"
}

// ValidateEditable checks that lines (including the delivery line) may be
// changed in this status.
func (s Status) ValidateEditable() error {
	if s != Draft && s != Sale {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s orders cannot be modified", s),
		)
	}
	return nil
}

// Confirm transitions Draft -> Sale.
func (s Status) Confirm() (Status, error) {
	if s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s),
		)
	}
	return Sale, nil
}

// Lock transitions Sale -> Done.
func (s Status) Lock() (Status, error) {
	if s != Sale {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to lock", s),
		)
	}
	return Done, nil
}

// Cancel transitions Draft or Sale -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.ValidateEditable(); err != nil {
		return 0, err
	}
	return Cancelled, nil
}
