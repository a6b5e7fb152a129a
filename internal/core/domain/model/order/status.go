package order

import (
	"fmt"

	"receipts/internal/pkg/errs"
)

// Status represents the delivery state of an order. It is persisted as a
// lower-case string so stored rows stay readable without an enum mapping.
//
// Lifecycle:
//
//	Pending <──> Delivered
//
// Orders start pending. Marking delivered is the normal forward transition;
// the reverse direction is allowed so a mis-marked order can be reopened.
type Status string

const (
	// Pending is the initial status of every registered order.
	Pending Status = "pending"

	// Delivered indicates the order has been handed to the customer.
	Delivered Status = "delivered"
)

// StatusFromString parses a raw status value. Surrounding case is not
// normalized: only the exact lower-case names are valid, matching what the
// store persists.
func StatusFromString(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks that the Status is one of the known values.
func (s Status) Validate() error {
	switch s {
	case Pending, Delivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// String returns the persisted textual form of the status.
func (s Status) String() string {
	return string(s)
}
