// Package services provides domain services of the receipts system:
// operations that work on aggregates without belonging to one.
//
// The package includes:
//   - ReceiptRenderer: a stateless transform from an order record to a
//     fixed-layout printable receipt document
package services
