package services

import (
	"bytes"
	"fmt"
	"strings"

	"receipts/internal/core/domain/model/order"
	"receipts/internal/pkg/validate"

	"github.com/olekukonko/tablewriter"
)

const (
	receiptWidth = 50
	receiptTitle = "ORDER RECEIPT"

	receiptDisclaimer = "This receipt was generated automatically by the " +
		"system and contains the information recorded at registration time."
)

// ReceiptRenderer is a stateless domain service that turns a finalized order
// record into a fixed-layout printable document.
//
// The output layout, top to bottom:
//   - title block
//   - the record's registration timestamp
//   - a two-column field/value table: order id, transaction id, customer name,
//     tax id, product, gross value, discount, savings, the derived final value
//     (gross minus discount, computed at render time), and upper-case status
//   - a disclaimer footnote and a signature line
//
// Rendering is deterministic for identical input and never mutates the order.
// Currency values carry the R$ marker with two decimal places; empty optional
// fields render as "N/A".
type ReceiptRenderer struct{}

// NewReceiptRenderer creates a new ReceiptRenderer instance.
func NewReceiptRenderer() ReceiptRenderer {
	return ReceiptRenderer{}
}

// Render produces the receipt document for the given order.
func (ReceiptRenderer) Render(o *order.Order) ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	rule := strings.Repeat("=", receiptWidth)

	buf.WriteString(rule + "\n")
	buf.WriteString(center(receiptTitle, receiptWidth) + "\n")
	buf.WriteString(rule + "\n\n")
	fmt.Fprintf(&buf, "Date/Time: %s\n\n", o.CreatedAt().Format(validate.DateLayout))

	table := tablewriter.NewWriter(&buf)
	table.Header("Field", "Value")
	rows := [][]string{
		{"Order ID", o.ID().String()},
		{"Transaction ID", orNA(o.TransactionID())},
		{"Customer Name", o.CustomerName()},
		{"Tax ID", orNA(o.TaxID())},
		{"Product", o.ProductDescription()},
		{"Gross Value", currency(o.GrossValue().String())},
		{"Discount", currency(o.Discount().String())},
		{"Savings", currency(o.Savings().String())},
		{"Final Value", currency(o.FinalValue().StringFixed(2))},
		{"Status", strings.ToUpper(o.Status().String())},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return nil, err
		}
	}
	if err := table.Render(); err != nil {
		return nil, err
	}

	buf.WriteString("\n" + receiptDisclaimer + "\n\n")
	buf.WriteString(strings.Repeat("_", receiptWidth) + "\n")
	buf.WriteString("Signature\n")

	return buf.Bytes(), nil
}

func currency(amount string) string {
	return "R$ " + amount
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad/2) + s
}
