package reflector

import "reflect"

//go:generate go tool stringer -type=Category -linecomment -output=category_string.go

// Category is the copy and equality semantics of a property value.
type Category int

const (
	_ Category = iota // zero value is invalid

	Scalar    // scalar
	String    // string
	Reference // reference
	Array     // array
)

// CategoryOf classifies a field type.
func CategoryOf(t reflect.Type) Category {
	switch t.Kind() {
	case reflect.String:
		return String
	case reflect.Slice, reflect.Array:
		return Array
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return Reference
	default:
		return Scalar
	}
}

// nillable reports whether nil is a valid value of t.
func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Pointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
