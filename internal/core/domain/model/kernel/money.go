package kernel

import (
	"fmt"

	"receipts/internal/pkg/errs"
	"receipts/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// NewMoney or MustMoney. A zero Money is a legitimate amount (0.00), so the
// constructed state is tracked with a guard rather than a sentinel value.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney")

// Money is a non-negative monetary amount with two fractional digits.
// It wraps shopspring/decimal so arithmetic on amounts is exact; float money
// never enters the domain.
//
// Example:
//
//	gross, _ := kernel.NewMoney(decimal.RequireFromString("150.00"))
//	discount, _ := kernel.NewMoney(decimal.NewFromInt(10))
//	final := gross.Sub(discount) // 140.00
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// Negative amounts are rejected; the amount is rounded to two decimal places.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}

	return Money{
		amount: amount.Round(2),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ZeroMoney returns a constructed Money of 0.00.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Sub returns the difference m - other as a raw decimal. The result may be
// negative, which is why it is not a Money.
func (m Money) Sub(other Money) decimal.Decimal {
	return m.amount.Sub(other.amount)
}

// GreaterThan reports whether m exceeds other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount with exactly two fractional digits, e.g. "89.90".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate checks that the Money value was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
