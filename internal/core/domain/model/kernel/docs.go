// Package kernel provides the shared value objects of the receipts domain:
// OrderID, the operator-facing order identifier, and Money, a non-negative
// two-decimal monetary amount.
//
// Both types are immutable and validate themselves on construction, so any
// properly constructed instance can be trusted by the rest of the domain.
package kernel
