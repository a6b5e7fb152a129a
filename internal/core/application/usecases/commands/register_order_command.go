package commands

import (
	"errors"
	"time"

	"receipts/internal/core/domain/model/kernel"
	"receipts/internal/pkg/errs"
	"receipts/internal/pkg/guard"
)

var (
	ErrRegisterOrderCommandIsNotConstructed = errors.New(
		"RegisterOrderCommand must be created via NewRegisterOrderCommand constructor",
	)
)

// RegisterOrderCommand represents a request to persist a completed intake
// draft as a new order record. Field-level invariants (name length, discount
// bound, tax id shape) are enforced again by the order aggregate; the command
// only guarantees its inputs are constructed values.
//
// Example:
//
//	cmd, err := NewRegisterOrderCommand(id, "", "Maria Silva", "Wireless Mouse",
//	    gross, discount, "", time.Now())
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type RegisterOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.OrderID
	taxID              string
	customerName       string
	productDescription string
	grossValue         kernel.Money
	discount           kernel.Money
	transactionID      string
	createdAt          time.Time

	guard guard.ConstructorGuard
}

// NewRegisterOrderCommand creates a command to register a new order.
func NewRegisterOrderCommand(
	orderID kernel.OrderID,
	taxID string,
	customerName string,
	productDescription string,
	grossValue kernel.Money,
	discount kernel.Money,
	transactionID string,
	createdAt time.Time,
) (RegisterOrderCommand, error) {
	cmd := RegisterOrderCommand{
		taxID:              taxID,
		customerName:       customerName,
		productDescription: productDescription,
		transactionID:      transactionID,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAmounts(grossValue, discount),
		cmd.setCreatedAt(createdAt),
	); err != nil {
		return RegisterOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterOrderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c RegisterOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// TaxID returns the normalized tax id, possibly empty.
func (c RegisterOrderCommand) TaxID() string {
	return c.taxID
}

// CustomerName returns the customer's full name.
func (c RegisterOrderCommand) CustomerName() string {
	return c.customerName
}

// ProductDescription returns the product name or description.
func (c RegisterOrderCommand) ProductDescription() string {
	return c.productDescription
}

// GrossValue returns the order's gross value.
func (c RegisterOrderCommand) GrossValue() kernel.Money {
	return c.grossValue
}

// Discount returns the discount to record.
func (c RegisterOrderCommand) Discount() kernel.Money {
	return c.discount
}

// TransactionID returns the payment reference, possibly empty.
func (c RegisterOrderCommand) TransactionID() string {
	return c.transactionID
}

// CreatedAt returns the registration timestamp.
func (c RegisterOrderCommand) CreatedAt() time.Time {
	return c.createdAt
}

func (c *RegisterOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RegisterOrderCommand) setAmounts(grossValue, discount kernel.Money) error {
	if err := grossValue.Validate(); err != nil {
		return err
	}
	if err := discount.Validate(); err != nil {
		return err
	}
	c.grossValue = grossValue
	c.discount = discount
	return nil
}

func (c *RegisterOrderCommand) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	c.createdAt = createdAt
	return nil
}
