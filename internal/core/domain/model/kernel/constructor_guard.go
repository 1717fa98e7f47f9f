package kernel

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when a
// nil error is passed as the validation error, so validation always fails
// with a meaningful message for improperly constructed objects.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures domain objects are only created through their
// designated constructor functions. Embedding a guard in an aggregate or
// value object makes zero-value instances detectable: the guard's flag is
// only set by NewConstructorGuard, so a struct built by direct
// initialization fails Validate.
//
// Example usage:
//
//	var ErrEntryNotConstructed = errors.New("Entry must be created via NewEntry")
//
//	type Entry struct {
//	    quantity int
//	    guard    ConstructorGuard
//	}
//
//	func NewEntry(quantity int) (Entry, error) {
//	    if quantity <= 0 {
//	        return Entry{}, errors.New("quantity must be positive")
//	    }
//	    return Entry{
//	        quantity: quantity,
//	        guard:    NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (e Entry) Validate() error {
//	    return e.guard.Validate(ErrEntryNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it only inside the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the owning object was built through its
// constructor. For zero-value guards it returns validationError, falling
// back to ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}

	if !g.isConstructed {
		return validationError
	}

	return nil
}
