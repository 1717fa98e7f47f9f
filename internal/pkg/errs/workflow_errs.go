package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for workflow-level failures: state machine violations,
// partial inspection worksheets, authoritative allocation conflicts and
// collaborator transport failures.
var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrIncomplete        = errors.New("operation is incomplete")
	ErrConflict          = errors.New("conflict")
	ErrTransport         = errors.New("transport failure")
)

// InvalidTransitionError indicates a requested order state change that is not
// an edge of the lifecycle graph. The order state is left unchanged.
type InvalidTransitionError struct {
	From   string
	Action string
	Cause  error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// source state and requested action.
func NewInvalidTransitionError(from, action string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Action: action}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError
// wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(from, action string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Action: action, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is not allowed from %s (cause: %s)",
			ErrInvalidTransition, e.Action, e.From, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is not allowed from %s", ErrInvalidTransition, e.Action, e.From))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// IncompleteError indicates an all-or-nothing operation attempted before all
// of its parts were supplied. Done and Total let callers render progress as
// "x of y completed".
type IncompleteError struct {
	ParamName string
	Done      int
	Total     int
}

// NewIncompleteError creates an IncompleteError with progress counters.
func NewIncompleteError(paramName string, done, total int) *IncompleteError {
	return &IncompleteError{ParamName: paramName, Done: done, Total: total}
}

func (e *IncompleteError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s, %d of %d completed",
		ErrIncomplete, e.ParamName, e.Done, e.Total))
}

func (e *IncompleteError) Unwrap() error {
	return ErrIncomplete
}

// ConflictError indicates that the authoritative check rejected a locally
// valid selection, typically a storage slot consumed by a concurrent session.
// The caller must clear the affected draft row and re-select.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying
// cause.
func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrConflict, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is no longer available", ErrConflict, e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// TransportError indicates a collaborator call that failed after the allowed
// number of attempts. No state mutation occurred on the caller's side.
type TransportError struct {
	Operation string
	Attempts  int
	Cause     error
}

// NewTransportError creates a TransportError for the named operation.
func NewTransportError(operation string, attempts int, cause error) *TransportError {
	return &TransportError{Operation: operation, Attempts: attempts, Cause: cause}
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s failed after %d attempts (cause: %s)",
			ErrTransport, e.Operation, e.Attempts, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s failed after %d attempts", ErrTransport, e.Operation, e.Attempts))
}

func (e *TransportError) Unwrap() error {
	return ErrTransport
}
