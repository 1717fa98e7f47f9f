// Package order implements the order aggregate of the fulfillment workflow.
//
// The package provides:
//   - Order: the aggregate root owning item lines, mutated only through
//     lifecycle transitions (approve, reject, start, complete, cancel)
//   - Item: a product/batch line with quantity and placement invariants
//   - Status: the lifecycle state machine with fail-closed transitions
//   - QualityStatus: the aggregated inspection outcome
//   - Direction: inbound vs outbound classification
//
// All state changes validate their preconditions first and return a typed
// error from the errs package on rejection, leaving the aggregate unchanged.
package order
