package commands

import (
	"errors"
	"time"

	"receipts/internal/core/domain/model/kernel"
	"receipts/internal/core/domain/model/order"
	"receipts/internal/pkg/errs"
	"receipts/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a request to move an existing order to
// a new status. Either direction is allowed: pending to delivered and back.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.OrderID
	newStatus order.Status
	changedAt time.Time

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
func NewChangeOrderStatusCommand(
	orderID kernel.OrderID,
	newStatus order.Status,
	changedAt time.Time,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
		cmd.setChangedAt(changedAt),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to change.
func (c ChangeOrderStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// NewStatus returns the status to apply.
func (c ChangeOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// ChangedAt returns the timestamp of the change.
func (c ChangeOrderStatusCommand) ChangedAt() time.Time {
	return c.changedAt
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}

func (c *ChangeOrderStatusCommand) setChangedAt(changedAt time.Time) error {
	if changedAt.IsZero() {
		return errs.NewValueIsRequiredError("changedAt")
	}
	c.changedAt = changedAt
	return nil
}
