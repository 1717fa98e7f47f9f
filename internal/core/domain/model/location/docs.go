// Package location models the warehouse storage hierarchy and the
// client-side allocation draft.
//
// The hierarchy is Area -> Shelf -> Storage; Area, Shelf and Storage are
// immutable master-data snapshots with a live SlotStatus on the storage
// level. Draft is the mutable, per-session selection of shelf/storage rows
// built incrementally before an atomic putaway commit.
//
// Selection here is optimistic: a slot that passes the local checks can
// still be rejected at commit time when a concurrent session consumed it,
// which surfaces as a ConflictError requiring re-selection of the row.
package location
