// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderQueryResponse represents an order record in the read model. Money
// fields are carried as decimals so presentation layers can format them
// without re-parsing; FinalValue is derived, not stored.
type OrderQueryResponse struct {
	ID                 string
	TaxID              string
	CustomerName       string
	ProductDescription string
	GrossValue         decimal.Decimal
	Discount           decimal.Decimal
	Savings            decimal.Decimal
	FinalValue         decimal.Decimal
	Status             string
	TransactionID      string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

const orderSelectColumns = `
		id,
		tax_id,
		customer_name,
		product_description,
		gross_value,
		discount,
		savings,
		status,
		transaction_id,
		created_at,
		updated_at`

func scanOrderRow(scan func(dest ...any) error) (OrderQueryResponse, error) {
	var resp OrderQueryResponse

	err := scan(
		&resp.ID,
		&resp.TaxID,
		&resp.CustomerName,
		&resp.ProductDescription,
		&resp.GrossValue,
		&resp.Discount,
		&resp.Savings,
		&resp.Status,
		&resp.TransactionID,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return OrderQueryResponse{}, err
	}

	resp.FinalValue = resp.GrossValue.Sub(resp.Discount)
	return resp, nil
}
