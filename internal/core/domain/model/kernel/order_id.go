package kernel

import (
	"fmt"
	"strings"

	"receipts/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxOrderIDLength bounds operator-supplied identifiers. Generated identifiers
// (UUID strings) are 36 characters and always fit.
const MaxOrderIDLength = 64

// ErrOrderIDIsNotConstructed indicates that an OrderID was not created through
// NewOrderID or GenerateOrderID. The zero value fails validation.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or GenerateOrderID")

// OrderID is the unique identifier of an order record. Unlike a plain UUID it
// may be any operator-chosen token (short human-friendly ids such as "ORD1"
// are common), so it is modeled as a bounded, non-empty string value object.
//
// Example:
//
//	id, err := kernel.NewOrderID("ORD1")
//	if err != nil {
//	    // handle invalid identifier
//	}
//	generated := kernel.GenerateOrderID() // fresh UUID-based id
type OrderID struct {
	value string
}

// NewOrderID creates an OrderID from operator input. The input is trimmed and
// must be non-empty and at most MaxOrderIDLength characters.
func NewOrderID(raw string) (OrderID, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}
	if len([]rune(value)) > MaxOrderIDLength {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("length %d exceeds maximum of %d", len([]rune(value)), MaxOrderIDLength))
	}

	return OrderID{value: value}, nil
}

// GenerateOrderID synthesizes a fresh globally-unique identifier.
// Used when the operator asks the workflow to generate an id.
func GenerateOrderID() OrderID {
	return OrderID{value: uuid.NewString()}
}

// String returns the identifier's textual form.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two identifiers for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the OrderID was properly constructed.
// Returns ErrOrderIDIsNotConstructed for the zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
