// Package intake models the guided order-entry session: the ordered sequence
// of field-collection steps and the per-operator Session that accumulates a
// draft order one validated field at a time.
//
// A Session is ephemeral. It is created when an operator begins intake,
// mutated as each step input is accepted, and destroyed on finalization or
// cancellation. Sessions are never persisted.
//
// The step order is fixed:
//
//	AwaitingID -> AwaitingTaxID -> AwaitingName -> AwaitingProduct ->
//	AwaitingGrossValue -> AwaitingDiscount -> AwaitingTransactionID ->
//	AwaitingDate
//
// Accepting the date input completes the draft; the application layer then
// registers the order and discards the session.
package intake
