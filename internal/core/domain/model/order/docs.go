// Package order provides the Order aggregate of the receipts system: one
// registered sale with its customer, product, monetary amounts, and delivery
// status.
//
// Key business rules:
//   - Orders must have a valid unique identifier
//   - Customer name and product description must be at least 3 characters
//   - The discount can never exceed the gross value
//   - Savings mirror the discount at creation time
//   - Status is either pending or delivered; new orders start pending
//   - Orders can only be created through NewOrder (or RestoreOrder when
//     reconstructing from persistence)
//
// The package follows the same aggregate conventions as the rest of the
// domain: private fields, constructor validation, and a Validate method that
// detects bypassed constructors.
package order
