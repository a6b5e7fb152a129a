// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"receipts/internal/core/domain/model/kernel"
	"receipts/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The id, tax id and customer name columns are indexed because the search
// query matches on all three; created_at carries a descending index for the
// recency listing.
type OrderDTO struct {
	ID                 string          `gorm:"type:varchar(64);primaryKey"`
	TaxID              string          `gorm:"type:varchar(11);index"`
	CustomerName       string          `gorm:"index"`
	ProductDescription string
	GrossValue         decimal.Decimal `gorm:"type:decimal(20,2)"`
	Discount           decimal.Decimal `gorm:"type:decimal(20,2)"`
	Savings            decimal.Decimal `gorm:"type:decimal(20,2)"`
	Status             string          `gorm:"type:varchar(16)"`
	TransactionID      string
	CreatedAt          time.Time       `gorm:"index:idx_orders_created_at,sort:desc"`
	UpdatedAt          time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:                 o.ID().String(),
		TaxID:              o.TaxID(),
		CustomerName:       o.CustomerName(),
		ProductDescription: o.ProductDescription(),
		GrossValue:         o.GrossValue().Amount(),
		Discount:           o.Discount().Amount(),
		Savings:            o.Savings().Amount(),
		Status:             o.Status().String(),
		TransactionID:      o.TransactionID(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder so stored rows
// round-trip without re-deriving savings or timestamps.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	grossValue, err := kernel.NewMoney(dto.GrossValue)
	if err != nil {
		return nil, err
	}

	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return nil, err
	}

	savings, err := kernel.NewMoney(dto.Savings)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.TaxID,
		dto.CustomerName,
		dto.ProductDescription,
		grossValue,
		discount,
		savings,
		status,
		dto.CreatedAt,
		dto.TransactionID,
		dto.UpdatedAt,
	)
}
