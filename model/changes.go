package model

import (
	"fmt"

	"model-reflector/reflector"
)

// Change is the current value of a property that differs from the original.
type Change struct {
	Name  string
	Value any
}

// Changes lists changed properties in updatable order.
type Changes []Change

// Names returns the changed property names in order.
func (c Changes) Names() []string {
	names := make([]string, len(c))
	for i, ch := range c {
		names[i] = ch.Name
	}

	return names
}

// Map returns the changes keyed by property name.
func (c Changes) Map() map[string]any {
	m := make(map[string]any, len(c))
	for _, ch := range c {
		m[ch.Name] = ch.Value
	}

	return m
}

// TryGetChanges compares the updatable properties of current against
// original and returns the current values of those that differ, and
// whether there were any.
//
// Both instances must describe the same entity: differing keys are a caller
// bug and fail with reflector.ErrInvariantViolation.
func (m *Model[T]) TryGetChanges(current, original *T) (Changes, bool, error) {
	if current == nil || original == nil {
		return nil, false, fmt.Errorf("changes %s: %w", m.typ.Type(), reflector.ErrNilArgument)
	}

	for _, k := range m.keys {
		eq, err := k.Equal(current, original)
		if err != nil {
			return nil, false, err
		}

		if !eq {
			return nil, false, fmt.Errorf("changes %s: %w: key %s differs between instances",
				m.typ.Type(), reflector.ErrInvariantViolation, k.Name())
		}
	}

	var changes Changes

	for _, p := range m.updatable {
		eq, err := p.Equal(current, original)
		if err != nil {
			return nil, false, err
		}

		if eq {
			continue
		}

		v, err := p.Get(current)
		if err != nil {
			return nil, false, err
		}

		changes = append(changes, Change{Name: p.Name(), Value: v})
	}

	return changes, len(changes) > 0, nil
}
