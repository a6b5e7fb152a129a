package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListRecentOrdersQueryHandler retrieves the newest order records from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type ListRecentOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListRecentOrdersQueryHandler creates a handler for recency listings.
func NewListRecentOrdersQueryHandler(db *gorm.DB) ListRecentOrdersQueryHandler {
	return ListRecentOrdersQueryHandler{db: db}
}

// Handle executes the listing, newest records first.
func (h ListRecentOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListRecentOrdersQuery,
) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+orderSelectColumns+`
		FROM orders
		ORDER BY created_at DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
