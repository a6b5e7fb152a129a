package queries

import (
	"errors"
	"strings"

	"receipts/internal/pkg/errs"
	"receipts/internal/pkg/guard"
)

// DefaultSearchLimit caps search results when the caller does not ask for a
// specific page size.
const DefaultSearchLimit = 20

var (
	ErrSearchOrdersQueryIsNotConstructed = errors.New(
		"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
	)
)

// SearchOrdersQuery finds order records whose id, tax id or customer name
// contains the given term. Matching is case-sensitive substring matching,
// newest records first.
type SearchOrdersQuery struct {
	term  string
	limit int

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery creates a search query. The term must be non-empty
// after trimming; limit falls back to DefaultSearchLimit when not positive.
func NewSearchOrdersQuery(term string, limit int) (SearchOrdersQuery, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return SearchOrdersQuery{}, errs.NewValueIsRequiredError("term")
	}

	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	return SearchOrdersQuery{
		term:  term,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// Term returns the trimmed search term.
func (q SearchOrdersQuery) Term() string {
	return q.term
}

// Limit returns the maximum number of records to return.
func (q SearchOrdersQuery) Limit() int {
	return q.limit
}
