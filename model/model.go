package model

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"model-reflector/internal/cache"
	"model-reflector/reflector"
)

var (
	// ErrInvalidSchema reports malformed model metadata.
	ErrInvalidSchema = errors.New("invalid model schema")
	// ErrAlreadyBuilt reports a schema registered after its model was built.
	ErrAlreadyBuilt = errors.New("model already built")
)

type built struct {
	model any
	err   error
}

var models cache.ByType[built]

// Model holds the classified properties of T. It is built once per type by
// Reflect and is immutable afterwards.
type Model[T any] struct {
	typ     *reflector.Type[T]
	table   *Table
	columns map[string]Column

	mapped      []reflector.Property[T]
	keys        []reflector.Property[T]
	generated   []reflector.Property[T]
	concurrency []reflector.Property[T]
	selectable  []reflector.Property[T]
	insertable  []reflector.Property[T]
	updatable   []reflector.Property[T]
}

// Reflect returns the Model for T, building it on first use. Every call
// for the same T returns the same *Model, or the same error when the
// metadata of T is malformed.
func Reflect[T any]() (*Model[T], error) {
	b := models.Get(reflect.TypeFor[T](), func() built {
		m, err := build[T]()
		return built{model: m, err: err}
	})

	if b.err != nil {
		return nil, b.err
	}

	return b.model.(*Model[T]), nil
}

// MustReflect is like Reflect but panics on malformed metadata.
func MustReflect[T any]() *Model[T] {
	m, err := Reflect[T]()
	if err != nil {
		panic(err)
	}

	return m
}

func build[T any]() (*Model[T], error) {
	typ := reflector.Reflect[T]()
	schema, _ := registered(typ.Type())

	m := &Model[T]{typ: typ, columns: map[string]Column{}}

	if tabler, ok := any(new(T)).(Tabler); ok {
		table := tabler.Table()
		m.table = &table
	}

	if schema.Table != nil {
		table := *schema.Table
		m.table = &table
	}

	for p := range typ.All() {
		col, ok := schema.Columns[p.Name()]
		if !ok {
			var err error
			if col, err = columnFromTag(p.Field()); err != nil {
				return nil, fmt.Errorf("model %s: %w", typ.Type(), err)
			}
		}

		if col.Ignored {
			continue
		}

		m.columns[p.Name()] = col
		m.mapped = append(m.mapped, p)
	}

	slices.SortStableFunc(m.mapped, func(a, b reflector.Property[T]) int {
		return cmp.Or(
			compareOrder(m.columns[a.Name()].Order, m.columns[b.Name()].Order),
			strings.Compare(a.Name(), b.Name()),
		)
	})

	m.keys = m.filter(func(_ reflector.Property[T], c Column) bool { return c.Key })
	m.generated = m.filter(func(_ reflector.Property[T], c Column) bool { return c.Generated != GeneratedNone })
	m.concurrency = m.filter(func(_ reflector.Property[T], c Column) bool { return c.Concurrency })
	m.selectable = m.filter(func(p reflector.Property[T], _ Column) bool { return !p.IsReadOnly() })
	m.insertable = except(except(m.selectable, m.concurrency), m.generated)
	m.updatable = except(m.insertable, m.keys)

	return m, nil
}

// compareOrder sorts present orders ascending, before absent ones.
func compareOrder(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}

// filter selects mapped properties, keeping mapped order.
func (m *Model[T]) filter(keep func(reflector.Property[T], Column) bool) []reflector.Property[T] {
	var out []reflector.Property[T]

	for _, p := range m.mapped {
		if keep(p, m.columns[p.Name()]) {
			out = append(out, p)
		}
	}

	return out
}

// except returns the members of set not in drop, keeping the order of set.
func except[T any](set, drop []reflector.Property[T]) []reflector.Property[T] {
	var out []reflector.Property[T]

	for _, p := range set {
		if !slices.Contains(drop, p) {
			out = append(out, p)
		}
	}

	return out
}

// Type returns the property registry of T.
func (m *Model[T]) Type() *reflector.Type[T] { return m.typ }

// Table returns the table identity, if T declares one.
func (m *Model[T]) Table() (Table, bool) {
	if m.table == nil {
		return Table{}, false
	}

	return *m.table, true
}

// Column returns the metadata of a mapped property.
func (m *Model[T]) Column(name string) (Column, bool) {
	c, ok := m.columns[name]
	return c, ok
}

// Mapped returns every property that is not ignored.
func (m *Model[T]) Mapped() []reflector.Property[T] { return slices.Clone(m.mapped) }

// Keys returns the key properties.
func (m *Model[T]) Keys() []reflector.Property[T] { return slices.Clone(m.keys) }

// Generated returns the properties whose values the datastore generates.
func (m *Model[T]) Generated() []reflector.Property[T] { return slices.Clone(m.generated) }

// Concurrency returns the concurrency token properties.
func (m *Model[T]) Concurrency() []reflector.Property[T] { return slices.Clone(m.concurrency) }

// Selectable returns the writable mapped properties.
func (m *Model[T]) Selectable() []reflector.Property[T] { return slices.Clone(m.selectable) }

// Insertable returns the selectable properties that are neither generated
// nor concurrency tokens.
func (m *Model[T]) Insertable() []reflector.Property[T] { return slices.Clone(m.insertable) }

// Updatable returns the insertable properties that are not keys.
func (m *Model[T]) Updatable() []reflector.Property[T] { return slices.Clone(m.updatable) }
