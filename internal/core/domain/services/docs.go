// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the warehouse system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - LocationAllocator: pure derivations and advisory checks for building
//     shelf/storage allocation drafts against master-data snapshots
//   - CompletionPolicy: the pluggable predicate deciding when an in-progress
//     order may complete
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
