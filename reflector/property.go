package reflector

import (
	"reflect"
	"unsafe"
)

// Property reads and writes one property of instances of T.
//
// A Property is bound once per field when its Type is built and is safe for
// concurrent use; the instances passed to it are not synchronized.
type Property[T any] interface {
	// Name is the field name.
	Name() string
	// Type is the declared field type.
	Type() reflect.Type
	// Field is the struct field backing the property, tags included.
	Field() reflect.StructField
	Category() Category
	// IsArray reports whether the property holds a slice or an array.
	IsArray() bool
	IsReadOnly() bool

	// Get returns the property value of x.
	Get(x *T) (any, error)
	// Set stores value into the property of x. A nil value stores the zero
	// value of nillable types.
	Set(x *T, value any) error
	// Copy writes the property value of src into dst. Slices are copied into
	// a new backing array.
	Copy(src, dst *T) error
	// Equal reports whether x and y hold equal property values. Slices and
	// arrays compare element by element.
	Equal(x, y *T) (bool, error)
}

// meta is the type-independent part of a property.
type meta struct {
	owner    reflect.Type
	field    reflect.StructField
	path     fieldPath
	category Category
	readOnly bool
	nillable bool
}

func (m *meta) Name() string { return m.field.Name }
func (m *meta) Type() reflect.Type { return m.field.Type }
func (m *meta) Field() reflect.StructField { return m.field }
func (m *meta) Category() Category { return m.category }
func (m *meta) IsArray() bool { return m.category == Array }
func (m *meta) IsReadOnly() bool { return m.readOnly }

func (m *meta) fail(op string, err error) error {
	return &PropertyError{Op: op, Type: m.owner, Property: m.field.Name, Err: err}
}

// detach unshares the embedded structs between src and dst on the path to
// the field.
func (m *meta) detach(src, dst unsafe.Pointer) bool { return m.path.detach(src, dst) }

// checkWrite validates the arguments of a mutating operation.
func (m *meta) checkWrite(op string, instances ...unsafe.Pointer) error {
	for _, p := range instances {
		if p == nil {
			return m.fail(op, ErrNilArgument)
		}
	}

	if m.readOnly {
		return m.fail(op, ErrReadOnly)
	}

	return nil
}

// typed is a property whose field type V is known at compile time; values
// are read and written through the field address without reflection.
type typed[T, V any] struct {
	meta
	equal func(a, b V) bool
	clone func(V) V
}

func (p *typed[T, V]) load(x *T) V {
	ptr := p.path.addr(unsafe.Pointer(x), false)
	if ptr == nil {
		var zero V
		return zero
	}

	return *(*V)(ptr)
}

func (p *typed[T, V]) store(x *T, v V) {
	*(*V)(p.path.addr(unsafe.Pointer(x), true)) = v
}

func (p *typed[T, V]) Get(x *T) (any, error) {
	if x == nil {
		return nil, p.fail("get", ErrNilArgument)
	}

	return p.load(x), nil
}

func (p *typed[T, V]) Set(x *T, value any) error {
	if err := p.checkWrite("set", unsafe.Pointer(x)); err != nil {
		return err
	}

	v, ok := value.(V)
	if !ok {
		switch {
		case value == nil:
			if !p.nillable {
				return p.fail("set", mismatch(value, p.field.Type))
			}
		case reflect.TypeOf(value).AssignableTo(p.field.Type):
			v = reflect.ValueOf(value).Convert(p.field.Type).Interface().(V)
		default:
			return p.fail("set", mismatch(value, p.field.Type))
		}
	}

	p.store(x, v)

	return nil
}

func (p *typed[T, V]) Copy(src, dst *T) error {
	if err := p.checkWrite("copy", unsafe.Pointer(src), unsafe.Pointer(dst)); err != nil {
		return err
	}

	p.store(dst, p.clone(p.load(src)))

	return nil
}

func (p *typed[T, V]) Equal(x, y *T) (bool, error) {
	if x == nil || y == nil {
		return false, p.fail("equal", ErrNilArgument)
	}

	return p.equal(p.load(x), p.load(y)), nil
}

// dynamic is a property of any other field type, accessed through a
// reflect.Value placed over the field address.
type dynamic[T any] struct {
	meta
	equal equalFunc
	clone func(reflect.Value) reflect.Value
}

func (p *dynamic[T]) load(x *T) reflect.Value {
	ptr := p.path.addr(unsafe.Pointer(x), false)
	if ptr == nil {
		return reflect.Zero(p.field.Type)
	}

	return reflect.NewAt(p.field.Type, ptr).Elem()
}

func (p *dynamic[T]) store(x *T, v reflect.Value) {
	reflect.NewAt(p.field.Type, p.path.addr(unsafe.Pointer(x), true)).Elem().Set(v)
}

func (p *dynamic[T]) Get(x *T) (any, error) {
	if x == nil {
		return nil, p.fail("get", ErrNilArgument)
	}

	return p.load(x).Interface(), nil
}

func (p *dynamic[T]) Set(x *T, value any) error {
	if err := p.checkWrite("set", unsafe.Pointer(x)); err != nil {
		return err
	}

	if value == nil {
		if !p.nillable {
			return p.fail("set", mismatch(value, p.field.Type))
		}

		p.store(x, reflect.Zero(p.field.Type))

		return nil
	}

	v := reflect.ValueOf(value)
	if !v.Type().AssignableTo(p.field.Type) {
		return p.fail("set", mismatch(value, p.field.Type))
	}

	p.store(x, v)

	return nil
}

func (p *dynamic[T]) Copy(src, dst *T) error {
	if err := p.checkWrite("copy", unsafe.Pointer(src), unsafe.Pointer(dst)); err != nil {
		return err
	}

	p.store(dst, p.clone(p.load(src)))

	return nil
}

func (p *dynamic[T]) Equal(x, y *T) (bool, error) {
	if x == nil || y == nil {
		return false, p.fail("equal", ErrNilArgument)
	}

	return p.equal(p.load(x), p.load(y)), nil
}
