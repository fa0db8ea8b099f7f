package model

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"

	"model-reflector/internal/diagnostic"
	"model-reflector/internal/match"
	"model-reflector/reflector"
)

// Diagnostics lists the findings of Validate.
type Diagnostics = diagnostic.Diagnostics

var (
	schemasMu sync.RWMutex
	schemas   = map[reflect.Type]Schema{}
)

// Register installs s as the metadata of T, replacing its tags. It must run
// before the first Reflect[T]; afterwards it fails with ErrAlreadyBuilt.
// A schema with validation errors is rejected with ErrInvalidSchema.
func Register[T any](s Schema) error {
	t := reflect.TypeFor[T]()

	d := Validate[T](s)
	if d.HasErrors() {
		return fmt.Errorf("%w: %w", ErrInvalidSchema, d.Err())
	}

	schemasMu.Lock()
	defer schemasMu.Unlock()

	if models.Contains(t) {
		return fmt.Errorf("register %s: %w", t, ErrAlreadyBuilt)
	}

	s.Columns = maps.Clone(s.Columns)
	if s.Table != nil {
		table := *s.Table
		s.Table = &table
	}

	schemas[t] = s

	return nil
}

func registered(t reflect.Type) (Schema, bool) {
	schemasMu.RLock()
	defer schemasMu.RUnlock()

	s, ok := schemas[t]

	return s, ok
}

// Validate checks s against the properties of T.
func Validate[T any](s Schema) Diagnostics {
	var (
		d     Diagnostics
		typ   = reflector.Reflect[T]()
		tname = typ.Type().String()
	)

	if s.Table != nil && s.Table.Name == "" {
		d.AddError("empty_table_name", "table name is empty", tname, "")
	}

	var names []string
	for p := range typ.All() {
		names = append(names, p.Name())
	}

	orders := map[int]string{}

	for _, name := range slices.Sorted(maps.Keys(s.Columns)) {
		col := s.Columns[name]

		if _, ok := typ.Lookup(name); !ok {
			diag := diagnostic.Diagnostic{
				Severity: diagnostic.SeverityError,
				Code:     "unknown_property",
				Message:  "no such property",
				Type:     tname,
				Property: name,
			}
			diag.Suggestion, _ = match.Closest(name, names)
			d.Add(diag)

			continue
		}

		if !col.Generated.valid() {
			d.AddError("invalid_generated", fmt.Sprintf("unknown generated option %s", col.Generated), tname, name)
		}

		if col.Order != nil && *col.Order < 0 {
			d.AddError("negative_order", fmt.Sprintf("order %d is negative", *col.Order), tname, name)
		}

		if col.Ignored {
			if col.Key || col.Concurrency || col.Generated != GeneratedNone {
				d.AddWarning("ignored_with_flags", "ignored column sets flags that have no effect", tname, name)
			}

			continue
		}

		if col.Order != nil {
			if other, ok := orders[*col.Order]; ok {
				d.AddWarning("duplicate_order",
					fmt.Sprintf("order %d is also used by %s; ties are ordered by name", *col.Order, other),
					tname, name)
			} else {
				orders[*col.Order] = name
			}
		}
	}

	return d
}
