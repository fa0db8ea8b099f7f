package reflector

import (
	"fmt"
	"hash/maphash"
)

var identitySeed = maphash.MakeSeed()

// Comparer compares instances of T by the values of all their properties.
// Hashing is by identity, not by value.
type Comparer[T any] struct {
	typ *Type[T]
}

// Compare returns the property-wise comparer for T.
func Compare[T any]() Comparer[T] {
	return Comparer[T]{typ: Reflect[T]()}
}

// Equal reports whether x and y are the same instance, are both nil, or hold
// equal values in every property.
func (c Comparer[T]) Equal(x, y *T) bool {
	if x == y {
		return true
	}

	if x == nil || y == nil {
		return false
	}

	for _, p := range c.typ.properties {
		if eq, _ := p.Equal(x, y); !eq {
			return false
		}
	}

	return true
}

// Hash returns a hash of the identity of x. Instances with equal property
// values hash differently unless they are the same instance.
func (c Comparer[T]) Hash(x *T) (uint64, error) {
	if x == nil {
		return 0, fmt.Errorf("hash %s: %w", c.typ.typ, ErrNilArgument)
	}

	return maphash.Comparable(identitySeed, x), nil
}
