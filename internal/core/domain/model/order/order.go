package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"receipts/internal/core/domain/model/kernel"
	"receipts/internal/pkg/errs"
	"receipts/internal/pkg/validate"

	"github.com/shopspring/decimal"
)

// MinTextLength is the minimum length of the customer name and product
// description after trimming.
const MinTextLength = 3

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root representing one registered sale. All monetary
// fields are exact decimals; the final value (gross minus discount) is never
// stored and is always derived through FinalValue.
//
// Order maintains these invariants:
//   - id is valid and unique across the store (the store enforces uniqueness)
//   - taxId is empty or exactly 11 digits
//   - customerName and productDescription are at least MinTextLength characters
//   - discount never exceeds grossValue
//   - savings equals the discount recorded at creation time
type Order struct {
	id                 kernel.OrderID
	taxID              string
	customerName       string
	productDescription string
	grossValue         kernel.Money
	discount           kernel.Money
	savings            kernel.Money
	status             Status
	createdAt          time.Time
	transactionID      string
	updatedAt          time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status. savings is set to the
// discount, mirroring it at creation time. createdAt is the operator-supplied
// (or current) registration timestamp and also seeds updatedAt.
//
// Returns a validation error if any field violates the aggregate invariants.
func NewOrder(
	id kernel.OrderID,
	taxID string,
	customerName string,
	productDescription string,
	grossValue kernel.Money,
	discount kernel.Money,
	transactionID string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTaxID(taxID),
		o.setCustomerName(customerName),
		o.setProductDescription(productDescription),
		o.setAmounts(grossValue, discount),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.transactionID = strings.TrimSpace(transactionID)
	o.savings = o.discount
	o.updatedAt = o.createdAt
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts the stored status, savings, and updatedAt verbatim (savings is kept
// as its own field so it may diverge from the discount in the future).
func RestoreOrder(
	id kernel.OrderID,
	taxID string,
	customerName string,
	productDescription string,
	grossValue kernel.Money,
	discount kernel.Money,
	savings kernel.Money,
	status Status,
	createdAt time.Time,
	transactionID string,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTaxID(taxID),
		o.setCustomerName(customerName),
		o.setProductDescription(productDescription),
		o.setAmounts(grossValue, discount),
		o.setCreatedAt(createdAt),
		savings.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.savings = savings
	o.status = status
	o.transactionID = strings.TrimSpace(transactionID)
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order was created through a constructor.
// Returns ErrOrderIsNotConstructed for directly instantiated structs.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// TaxID returns the customer's tax id, or the empty string when not supplied.
func (o *Order) TaxID() string {
	return o.taxID
}

// CustomerName returns the customer's full name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// ProductDescription returns the product name or description.
func (o *Order) ProductDescription() string {
	return o.productDescription
}

// GrossValue returns the order's gross value.
func (o *Order) GrossValue() kernel.Money {
	return o.grossValue
}

// Discount returns the discount applied to the order.
func (o *Order) Discount() kernel.Money {
	return o.discount
}

// Savings returns the savings recorded at creation time.
func (o *Order) Savings() kernel.Money {
	return o.savings
}

// FinalValue returns grossValue minus discount. It is derived on demand and
// never persisted.
func (o *Order) FinalValue() decimal.Decimal {
	return o.grossValue.Sub(o.discount)
}

// Status returns the order's current delivery status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the registration timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// TransactionID returns the free-text payment reference, or the empty string.
func (o *Order) TransactionID() string {
	return o.transactionID
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to newStatus and refreshes updatedAt.
// Both directions between Pending and Delivered are allowed so a mis-marked
// order can be reopened.
func (o *Order) ChangeStatus(newStatus Status, at time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = at
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTaxID(taxID string) error {
	taxID = strings.TrimSpace(taxID)
	if taxID == "" {
		o.taxID = ""
		return nil
	}

	if taxID != validate.DigitsOnly(taxID) || len(taxID) != validate.TaxIDLength {
		return errs.NewValueIsInvalidErrorWithCause("taxId",
			fmt.Errorf("%q is not %d digits", taxID, validate.TaxIDLength))
	}

	o.taxID = taxID
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	customerName = strings.TrimSpace(customerName)
	if len([]rune(customerName)) < MinTextLength {
		return errs.NewValueIsInvalidErrorWithCause("customerName",
			fmt.Errorf("shorter than %d characters", MinTextLength))
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setProductDescription(productDescription string) error {
	productDescription = strings.TrimSpace(productDescription)
	if len([]rune(productDescription)) < MinTextLength {
		return errs.NewValueIsInvalidErrorWithCause("productDescription",
			fmt.Errorf("shorter than %d characters", MinTextLength))
	}
	o.productDescription = productDescription
	return nil
}

func (o *Order) setAmounts(grossValue, discount kernel.Money) error {
	if err := grossValue.Validate(); err != nil {
		return err
	}
	if err := discount.Validate(); err != nil {
		return err
	}
	if discount.GreaterThan(grossValue) {
		return errs.NewValueIsOutOfRangeError("discount", discount.String(), "0.00", grossValue.String())
	}

	o.grossValue = grossValue
	o.discount = discount
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
