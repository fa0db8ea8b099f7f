package reflector

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"
	"unsafe"

	"model-reflector/internal/cache"
	"model-reflector/internal/match"
)

const (
	tagKey      = "reflect"
	tagSkip     = "-"
	tagReadOnly = "readonly"
)

var types cache.ByType[any]

type detacher interface {
	detach(src, dst unsafe.Pointer) bool
}

// Type holds the properties of T. It is built once per type by Reflect and
// is immutable afterwards.
type Type[T any] struct {
	typ        reflect.Type
	properties []Property[T]
	byName     map[string]Property[T]
	names      []string
	arrays     []Property[T]
}

// Reflect returns the Type for T, building it on first use. Every call for
// the same T returns the same *Type.
func Reflect[T any]() *Type[T] {
	t := reflect.TypeFor[T]()

	return types.Get(t, func() any { return newType[T](t) }).(*Type[T])
}

func newType[T any](t reflect.Type) *Type[T] {
	r := &Type[T]{typ: t, byName: map[string]Property[T]{}}
	if t.Kind() != reflect.Struct {
		return r
	}

	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || embedsStruct(f) {
			continue
		}

		opts := parseTag(f.Tag.Get(tagKey))
		if opts[tagSkip] {
			continue
		}

		p := bind[T](t, f, opts[tagReadOnly])
		r.properties = append(r.properties, p)
		r.byName[f.Name] = p
		r.names = append(r.names, f.Name)

		if p.IsArray() {
			r.arrays = append(r.arrays, p)
		}
	}

	return r
}

// embedsStruct reports whether f is an embedded struct, whose fields are
// promoted instead of exposing f itself.
func embedsStruct(f reflect.StructField) bool {
	if !f.Anonymous {
		return false
	}

	t := f.Type
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Kind() == reflect.Struct
}

func parseTag(tag string) map[string]bool {
	opts := map[string]bool{}

	for opt := range strings.SplitSeq(tag, ",") {
		if opt = strings.TrimSpace(opt); opt != "" {
			opts[opt] = true
		}
	}

	return opts
}

// Type returns the reflected type.
func (r *Type[T]) Type() reflect.Type { return r.typ }

// Len returns the number of properties.
func (r *Type[T]) Len() int { return len(r.properties) }

// Lookup returns the named property.
func (r *Type[T]) Lookup(name string) (Property[T], bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Property returns the named property, or an ErrNotFound error naming the
// closest known property when there is one.
func (r *Type[T]) Property(name string) (Property[T], error) {
	if p, ok := r.byName[name]; ok {
		return p, nil
	}

	err := ErrNotFound
	if hint, ok := match.Closest(name, r.names); ok {
		err = fmt.Errorf("%w (did you mean %q?)", ErrNotFound, hint)
	}

	return nil, &PropertyError{Op: "lookup", Type: r.typ, Property: name, Err: err}
}

// Properties returns all properties in field declaration order.
func (r *Type[T]) Properties() []Property[T] {
	return slices.Clone(r.properties)
}

// All iterates over all properties in field declaration order.
func (r *Type[T]) All() iter.Seq[Property[T]] {
	return slices.Values(r.properties)
}

// Clone returns a shallow copy of src in which every writable slice
// property holds its own backing array. Embedded struct pointers leading to
// such a property are copied too; the rest stay shared.
func (r *Type[T]) Clone(src *T) (*T, error) {
	if src == nil {
		return nil, fmt.Errorf("clone %s: %w", r.typ, ErrNilArgument)
	}

	c := new(T)
	*c = *src

	for _, p := range r.arrays {
		if p.IsReadOnly() {
			continue
		}

		if d, ok := p.(detacher); ok && !d.detach(unsafe.Pointer(src), unsafe.Pointer(c)) {
			continue
		}

		if err := p.Copy(src, c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// CopyTo copies every writable property of src into dst and returns dst.
func (r *Type[T]) CopyTo(src, dst *T) (*T, error) {
	if src == nil || dst == nil {
		return nil, fmt.Errorf("copy %s: %w", r.typ, ErrNilArgument)
	}

	for _, p := range r.properties {
		if p.IsReadOnly() {
			continue
		}

		if err := p.Copy(src, dst); err != nil {
			return nil, err
		}
	}

	return dst, nil
}
