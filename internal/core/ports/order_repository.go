package ports

import (
	"context"

	"receipts/internal/core/domain/model/kernel"
	"receipts/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// List-shaped reads (search, recency listing) live in the query handlers;
// the repository deals in whole aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate. The store enforces id uniqueness:
	// inserting an existing id fails with errs.ErrObjectAlreadyExists. This is
	// the authoritative duplicate guard; the workflow's pre-insert existence
	// check is only a courtesy to the operator.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Fails with errs.ErrObjectNotFound when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Fails with errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// Exists reports whether an order with the given identifier is stored.
	Exists(ctx context.Context, id kernel.OrderID) (bool, error)
}
