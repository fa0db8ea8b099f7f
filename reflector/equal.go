package reflector

import (
	"reflect"
	"time"
)

type equalFunc func(a, b reflect.Value) bool

// equalFor returns the equality used for values of type t: element-wise for
// slices and arrays, identity for maps and funcs, == for comparable values
// and reflect.DeepEqual for everything else.
func equalFor(t reflect.Type) equalFunc {
	if t == reflect.TypeFor[time.Time]() {
		return func(a, b reflect.Value) bool {
			return a.Interface().(time.Time).Equal(b.Interface().(time.Time))
		}
	}

	switch t.Kind() {
	case reflect.Slice:
		elem := equalFor(t.Elem())

		return func(a, b reflect.Value) bool {
			if a.IsNil() != b.IsNil() {
				return false
			}

			return elementsEqual(a, b, elem)
		}
	case reflect.Array:
		elem := equalFor(t.Elem())

		return func(a, b reflect.Value) bool {
			return elementsEqual(a, b, elem)
		}
	case reflect.Map, reflect.Func:
		return func(a, b reflect.Value) bool {
			return a.UnsafePointer() == b.UnsafePointer()
		}
	default:
		return valuesEqual
	}
}

func elementsEqual(a, b reflect.Value, elem equalFunc) bool {
	if a.Len() != b.Len() {
		return false
	}

	for i := range a.Len() {
		if !elem(a.Index(i), b.Index(i)) {
			return false
		}
	}

	return true
}

// valuesEqual applies == when both dynamic values support it.
func valuesEqual(a, b reflect.Value) bool {
	if a.Comparable() && b.Comparable() {
		return a.Equal(b)
	}

	return reflect.DeepEqual(a.Interface(), b.Interface())
}

// cloneFor returns the copy applied to values of type t on Copy. Slices get
// a new backing array; everything else is returned as is.
func cloneFor(t reflect.Type) func(reflect.Value) reflect.Value {
	if t.Kind() != reflect.Slice {
		return func(v reflect.Value) reflect.Value { return v }
	}

	return func(v reflect.Value) reflect.Value {
		if v.IsNil() {
			return v
		}

		c := reflect.MakeSlice(t, v.Len(), v.Len())
		reflect.Copy(c, v)

		return c
	}
}
