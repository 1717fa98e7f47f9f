// Package inspection implements the quality-inspection aggregate of the
// fulfillment workflow.
//
// The package provides:
//   - Worksheet: the keyed working set of pending per-item verdicts, with
//     at most one live entry per (productID, batchNumber) key
//   - Record: the inspection aggregate, mutated incrementally through its
//     worksheet and immutable after an all-or-nothing finalize
//   - Item: the immutable result line emitted by finalize, tracking only
//     putaway progress afterwards
//
// Aggregation follows the reconciliation rule: all verdicts approved yields
// Passed, all rejected yields Failed, a mix yields PartialException, and a
// partial worksheet yields no order-level verdict at all.
package inspection
