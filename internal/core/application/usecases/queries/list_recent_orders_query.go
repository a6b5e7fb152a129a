package queries

import (
	"errors"

	"receipts/internal/pkg/guard"
)

// DefaultRecentLimit is how many records a recency listing returns when the
// caller does not ask for a specific count.
const DefaultRecentLimit = 10

var (
	ErrListRecentOrdersQueryIsNotConstructed = errors.New(
		"ListRecentOrdersQuery must be created via NewListRecentOrdersQuery constructor",
	)
)

// ListRecentOrdersQuery retrieves the most recently created order records,
// newest first.
type ListRecentOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewListRecentOrdersQuery creates a recency listing query. A non-positive
// limit falls back to DefaultRecentLimit.
func NewListRecentOrdersQuery(limit int) ListRecentOrdersQuery {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	return ListRecentOrdersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListRecentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListRecentOrdersQueryIsNotConstructed)
}

// Limit returns the maximum number of records to return.
func (q ListRecentOrdersQuery) Limit() int {
	return q.limit
}
