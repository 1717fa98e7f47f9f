// Package stock implements the batch-keyed stock ledger.
//
// Entry is the aggregate: one line per (productID, batchNumber) pair with
// an on-hand quantity, its available share and the storage placements
// holding it. Two mutation flows exist: Add for additions to an existing
// batch and SetQuantity for direct edits, where a shrinking edit is
// rejected because its available-quantity semantics are undefined.
package stock
