package reflector

import (
	"fmt"
	"reflect"
	"slices"
	"time"
)

func mismatch(value any, want reflect.Type) error {
	return fmt.Errorf("%w: cannot assign %T to %s", ErrTypeMismatch, value, want)
}

// bind builds the property for field f of owner. Exact common types get a
// typed accessor; named types and everything else get a reflect accessor.
func bind[T any](owner reflect.Type, f reflect.StructField, readOnly bool) Property[T] {
	m := meta{
		owner:    owner,
		field:    f,
		path:     newFieldPath(owner, f.Index),
		category: CategoryOf(f.Type),
		readOnly: readOnly,
		nillable: nillable(f.Type),
	}

	switch f.Type {
	case reflect.TypeFor[string]():
		return scalar[T, string](m)
	case reflect.TypeFor[bool]():
		return scalar[T, bool](m)
	case reflect.TypeFor[int]():
		return scalar[T, int](m)
	case reflect.TypeFor[int8]():
		return scalar[T, int8](m)
	case reflect.TypeFor[int16]():
		return scalar[T, int16](m)
	case reflect.TypeFor[int32]():
		return scalar[T, int32](m)
	case reflect.TypeFor[int64]():
		return scalar[T, int64](m)
	case reflect.TypeFor[uint]():
		return scalar[T, uint](m)
	case reflect.TypeFor[uint8]():
		return scalar[T, uint8](m)
	case reflect.TypeFor[uint16]():
		return scalar[T, uint16](m)
	case reflect.TypeFor[uint32]():
		return scalar[T, uint32](m)
	case reflect.TypeFor[uint64]():
		return scalar[T, uint64](m)
	case reflect.TypeFor[float32]():
		return scalar[T, float32](m)
	case reflect.TypeFor[float64]():
		return scalar[T, float64](m)
	case reflect.TypeFor[time.Duration]():
		return scalar[T, time.Duration](m)
	case reflect.TypeFor[time.Time]():
		return &typed[T, time.Time]{
			meta:  m,
			equal: time.Time.Equal,
			clone: identity[time.Time],
		}
	case reflect.TypeFor[[]byte]():
		return slice[T, byte](m)
	case reflect.TypeFor[[]string]():
		return slice[T, string](m)
	case reflect.TypeFor[[]int]():
		return slice[T, int](m)
	case reflect.TypeFor[[]int64]():
		return slice[T, int64](m)
	case reflect.TypeFor[[]float64]():
		return slice[T, float64](m)
	}

	return &dynamic[T]{
		meta:  m,
		equal: equalFor(f.Type),
		clone: cloneFor(f.Type),
	}
}

func scalar[T any, V comparable](m meta) Property[T] {
	return &typed[T, V]{
		meta:  m,
		equal: func(a, b V) bool { return a == b },
		clone: identity[V],
	}
}

func slice[T any, E comparable](m meta) Property[T] {
	return &typed[T, []E]{
		meta: m,
		equal: func(a, b []E) bool {
			return (a == nil) == (b == nil) && slices.Equal(a, b)
		},
		clone: func(s []E) []E { return slices.Clone(s) },
	}
}

func identity[V any](v V) V { return v }
