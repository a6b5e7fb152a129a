package queries

import (
	"context"
	"database/sql"
	"errors"

	"receipts/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order record from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. A missing record fails with
// errs.ErrObjectNotFound.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT`+orderSelectColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	resp, err := scanOrderRow(row.Scan)
	if err != nil {
		// Only an empty result set means the order is missing. Anything else
		// (a lost connection, a scan failure) must not masquerade as not-found.
		if errors.Is(err, sql.ErrNoRows) {
			return OrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
				"orderID", query.OrderID().String(), err,
			)
		}
		return OrderQueryResponse{}, err
	}

	return resp, nil
}
