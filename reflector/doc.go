// Package reflector provides fast, cached property access for struct types.
//
// Reflect[T] builds a Type[T] once per type: every exported field of T,
// including fields promoted from embedded structs, becomes a Property[T]
// whose getter and setter are bound at construction. Common field types get
// typed accessors that read and write through a precomputed field offset;
// the rest use a reflect accessor built once per field.
//
// Slices are never shared by Copy or Clone: the copy receives a new backing
// array holding the same elements. Equal compares slices element by element.
//
// Field tags under the "reflect" key tune discovery:
//
//	Secret string `reflect:"-"`        // not a property
//	Total  int    `reflect:"readonly"` // readable, never written
package reflector
