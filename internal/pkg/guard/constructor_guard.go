// Package guard detects zero-value structs that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and value objects. Only
// NewConstructorGuard produces a guard that validates.
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// for a zero-value guard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
