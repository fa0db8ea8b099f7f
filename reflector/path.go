package reflector

import (
	"reflect"
	"unsafe"
)

// fieldPath locates a possibly promoted field relative to the start of its
// outermost struct. Each hop dereferences an embedded struct pointer.
type fieldPath struct {
	hops   []hop
	offset uintptr
}

type hop struct {
	offset uintptr
	elem   reflect.Type
}

func newFieldPath(t reflect.Type, index []int) fieldPath {
	var p fieldPath

	for i, x := range index {
		f := t.Field(x)
		p.offset += f.Offset

		if i == len(index)-1 {
			break
		}

		t = f.Type
		if t.Kind() == reflect.Pointer {
			p.hops = append(p.hops, hop{offset: p.offset, elem: t.Elem()})
			p.offset = 0
			t = t.Elem()
		}
	}

	return p
}

// addr returns the address of the field inside the struct at base. A nil
// embedded pointer yields nil unless alloc is set, in which case a zero
// struct is allocated and linked in.
func (p fieldPath) addr(base unsafe.Pointer, alloc bool) unsafe.Pointer {
	for _, h := range p.hops {
		slot := (*unsafe.Pointer)(unsafe.Add(base, h.offset))
		if *slot == nil {
			if !alloc {
				return nil
			}

			*slot = reflect.New(h.elem).UnsafePointer()
		}

		base = *slot
	}

	return unsafe.Add(base, p.offset)
}

// detach gives dst its own copy of every embedded struct on the path that
// it still shares with src, so writes through dst never reach src. It
// reports false when src has a nil embedded pointer on the path.
func (p fieldPath) detach(src, dst unsafe.Pointer) bool {
	for _, h := range p.hops {
		from := *(*unsafe.Pointer)(unsafe.Add(src, h.offset))
		slot := (*unsafe.Pointer)(unsafe.Add(dst, h.offset))

		if from == nil {
			return false
		}

		if *slot == nil {
			*slot = reflect.New(h.elem).UnsafePointer()
		}

		if *slot == from {
			c := reflect.New(h.elem)
			c.Elem().Set(reflect.NewAt(h.elem, from).Elem())
			*slot = c.UnsafePointer()
		}

		src, dst = from, *slot
	}

	return true
}
