// Package errs provides standardized error types for the warehouse application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers two groups of errors:
//   - Value errors (ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError) raised by constructors and
//     repositories when inputs or lookups fail.
//   - Workflow errors (InvalidTransitionError, IncompleteError, ConflictError,
//     TransportError) raised by the order lifecycle, the inspection
//     reconciliation and the allocation commit paths.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classification works
//
// Every rejected operation in the core returns one of these typed errors to
// its caller and leaves internal state unchanged.
package errs
