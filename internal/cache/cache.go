// Package cache holds values built lazily once per reflect.Type.
//
// A value is constructed at most once per type even when several goroutines
// race on first access; every caller observes the same fully built value.
// Entries are never invalidated.
package cache

import (
	"reflect"
	"sync"
)

// ByType maps a reflect.Type to a value of type V built on first use.
// The zero value is ready to use.
type ByType[V any] struct {
	entries sync.Map // map[reflect.Type]func() V
}

// Get returns the value cached for t, calling build to construct it if this
// is the first request for t. Concurrent first requests share one build.
func (c *ByType[V]) Get(t reflect.Type, build func() V) V {
	if once, ok := c.entries.Load(t); ok {
		return once.(func() V)()
	}

	once, _ := c.entries.LoadOrStore(t, sync.OnceValue(build))

	return once.(func() V)()
}

// Contains reports whether a value for t has been requested.
func (c *ByType[V]) Contains(t reflect.Type) bool {
	_, ok := c.entries.Load(t)
	return ok
}
