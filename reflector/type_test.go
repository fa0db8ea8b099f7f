package reflector

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestReflect_ReturnsSingleton(t *testing.T) {
	expected := Reflect[sample]()

	for range 3 {
		assert.Same(t, expected, Reflect[sample]())
	}
}

func TestReflect_ConcurrentFirstAccess(t *testing.T) {
	type racy struct {
		A int
		B string
	}

	results := make([]*Type[racy], 32)

	var g errgroup.Group
	for i := range results {
		g.Go(func() error {
			results[i] = Reflect[racy]()
			return nil
		})
	}

	require.NoError(t, g.Wait())

	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

func TestType_Properties(t *testing.T) {
	r := Reflect[sample]()

	var names []string
	for p := range r.All() {
		names = append(names, p.Name())
	}

	assert.Equal(t, []string{
		"CreatedBy", "Tags", "OwnerName",
		"Name", "Count", "Ratio", "When", "Status", "Bytes", "Codes", "Grid",
		"Fixed", "Ref", "Attrs", "Any", "Total", "Frozen",
	}, names)
	assert.Equal(t, len(names), r.Len())
	assert.Len(t, r.Properties(), r.Len())
	assert.Equal(t, reflect.TypeFor[sample](), r.Type())
}

func TestType_PropertiesReturnsCopy(t *testing.T) {
	r := Reflect[sample]()

	props := r.Properties()
	props[0] = nil

	assert.NotNil(t, r.Properties()[0])
}

func TestType_Lookup(t *testing.T) {
	r := Reflect[sample]()

	p, ok := r.Lookup("Name")
	require.True(t, ok)

	same, err := r.Property("Name")
	require.NoError(t, err)
	assert.Same(t, p, same, "lookups return the bound property, not a copy")

	for _, name := range []string{"Secret", "internal", "audit", "owner", "Missing"} {
		_, ok := r.Lookup(name)
		assert.False(t, ok, name)

		_, err := r.Property(name)
		require.ErrorIs(t, err, ErrNotFound, name)
	}
}

func TestType_PropertySuggestsClosestName(t *testing.T) {
	_, err := Reflect[sample]().Property("created_by")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t,
		`lookup reflector.sample.created_by: property not found (did you mean "CreatedBy"?)`,
		err.Error())
}

func TestType_NonStruct(t *testing.T) {
	r := Reflect[int]()
	assert.Zero(t, r.Len())

	v := 7
	c, err := r.Clone(&v)
	require.NoError(t, err)
	assert.Equal(t, 7, *c)
	assert.NotSame(t, &v, c)
}

func TestType_Clone(t *testing.T) {
	r := Reflect[sample]()
	src := newSample()

	c, err := r.Clone(src)
	require.NoError(t, err)
	require.NotSame(t, src, c)

	assert.True(t, Compare[sample]().Equal(src, c))
	assert.Equal(t, src.Secret, c.Secret, "clone is a full shallow copy")
	assert.Same(t, src.Ref, c.Ref)

	c.Bytes[0] = 99
	c.Codes[0] = 99
	c.Tags[0] = "changed"

	assert.Equal(t, []byte{1, 2, 3}, src.Bytes)
	assert.Equal(t, []int32{7, 8}, src.Codes)
	assert.Equal(t, []string{"a", "b"}, src.Tags)

	c.Frozen[0] = 99
	assert.Equal(t, []int{99}, src.Frozen, "read-only slices keep the shallow copy")
}

func TestType_CloneThroughEmbeddedPointer(t *testing.T) {
	src := &tracked{history: &history{Events: []string{"a", "b"}}, Name: "n"}
	srcHistory, srcEvents := src.history, src.Events

	c, err := Reflect[tracked]().Clone(src)
	require.NoError(t, err)

	assert.Same(t, srcHistory, src.history, "source embedded struct is not replaced")
	assert.Same(t, &srcEvents[0], &src.Events[0], "source slice is not replaced")
	assert.NotSame(t, src.history, c.history)
	assert.NotSame(t, &src.Events[0], &c.Events[0])

	c.Events[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, src.Events)
	assert.Equal(t, []string{"changed", "b"}, c.Events)
}

func TestType_CloneThroughNestedEmbeddedPointers(t *testing.T) {
	src := &journal{
		tracked: &tracked{history: &history{Events: []string{"a"}}},
		Notes:   []string{"x"},
	}

	c, err := Reflect[journal]().Clone(src)
	require.NoError(t, err)

	assert.NotSame(t, src.tracked, c.tracked)
	assert.NotSame(t, src.history, c.history)

	c.Events[0] = "changed"
	c.Notes[0] = "changed"
	assert.Equal(t, []string{"a"}, src.Events)
	assert.Equal(t, []string{"x"}, src.Notes)
}

func TestType_CloneKeepsNilEmbeddedPointer(t *testing.T) {
	src := &tracked{Name: "n"}

	c, err := Reflect[tracked]().Clone(src)
	require.NoError(t, err)

	assert.Nil(t, c.history)
	assert.Nil(t, src.history)
	assert.Equal(t, "n", c.Name)
}

func TestType_CloneNil(t *testing.T) {
	_, err := Reflect[sample]().Clone(nil)
	require.ErrorIs(t, err, ErrNilArgument)
}

func TestType_CopyTo(t *testing.T) {
	r := Reflect[sample]()
	src := newSample()
	dst := &sample{Total: 1, Frozen: []int{1}, Secret: "kept"}

	got, err := r.CopyTo(src, dst)
	require.NoError(t, err)
	assert.Same(t, dst, got)

	assert.Equal(t, src.Name, dst.Name)
	assert.Equal(t, src.Codes, dst.Codes)
	assert.Equal(t, src.OwnerName, dst.OwnerName)
	assert.Same(t, src.Ref, dst.Ref)

	assert.Equal(t, 1, dst.Total, "read-only properties are not copied")
	assert.Equal(t, []int{1}, dst.Frozen)
	assert.Equal(t, "kept", dst.Secret, "skipped fields are not copied")
	assert.NotSame(t, src.owner, dst.owner)

	dst.Codes[0] = 99
	assert.Equal(t, int32(7), src.Codes[0])
}

func TestType_CopyToNil(t *testing.T) {
	r := Reflect[sample]()

	_, err := r.CopyTo(nil, &sample{})
	require.ErrorIs(t, err, ErrNilArgument)

	_, err = r.CopyTo(newSample(), nil)
	require.ErrorIs(t, err, ErrNilArgument)
}
