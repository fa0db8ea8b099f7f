package reflector

import (
	"errors"
	"reflect"
)

var (
	// ErrNilArgument reports a required instance that is nil.
	ErrNilArgument = errors.New("nil argument")
	// ErrNotFound reports a property name the type does not have.
	ErrNotFound = errors.New("property not found")
	// ErrReadOnly reports a write to a read-only property.
	ErrReadOnly = errors.New("property is read-only")
	// ErrTypeMismatch reports a value not assignable to the property type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrInvariantViolation reports a broken caller contract, such as
	// comparing two instances whose keys differ.
	ErrInvariantViolation = errors.New("invariant violation")
)

// PropertyError records a failed operation on a property.
type PropertyError struct {
	Op       string
	Type     reflect.Type
	Property string
	Err      error
}

func (e *PropertyError) Error() string {
	s := e.Op + " "
	if e.Type != nil {
		s += e.Type.String() + "."
	}

	return s + e.Property + ": " + e.Err.Error()
}

func (e *PropertyError) Unwrap() error { return e.Err }
