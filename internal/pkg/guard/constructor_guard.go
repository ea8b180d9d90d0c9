// Package guard provides a defensive programming primitive that ensures
// domain objects are created through their constructors rather than by
// zero-value struct literals.
//
// A ConstructorGuard is embedded (by value) in a command or value object.
// The zero value of the guard marks the owner as not constructed; only the
// NewConstructorGuard factory produces a guard that passes validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the owner was not
// constructed properly and no object-specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its owning object went through a constructor.
// The zero value is invalid; use NewConstructorGuard inside constructors.
// ConstructorGuard is immutable and safe for concurrent use.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard that passes Validate.
// Call it only from the owning object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil if the owner was built via its constructor.
// For a zero-value guard it returns notConstructedErr, falling back to
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr != nil {
		return notConstructedErr
	}
	return ErrDefaultConstructorGuard
}
