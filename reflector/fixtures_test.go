package reflector

import "time"

type status string

type ref struct {
	Label string
}

type audit struct {
	CreatedBy string
	Tags      []string
}

type owner struct {
	OwnerName string
}

// sample covers every value category and both embedding forms.
type sample struct {
	audit
	*owner

	Name     string
	Count    int
	Ratio    float64
	When     time.Time
	Status   status
	Bytes    []byte
	Codes    []int32
	Grid     [][]int
	Fixed    [3]int
	Ref      *ref
	Attrs    map[string]string
	Any      any
	Total    int    `reflect:"readonly"`
	Frozen   []int  `reflect:"readonly"`
	Secret   string `reflect:"-"`
	internal int
}

func newSample() *sample {
	return &sample{
		audit:  audit{CreatedBy: "admin", Tags: []string{"a", "b"}},
		owner:  &owner{OwnerName: "owner"},
		Name:   "first",
		Count:  3,
		Ratio:  0.5,
		When:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Status: "active",
		Bytes:  []byte{1, 2, 3},
		Codes:  []int32{7, 8},
		Grid:   [][]int{{1, 2}, {3}},
		Fixed:  [3]int{1, 2, 3},
		Ref:    &ref{Label: "shared"},
		Attrs:  map[string]string{"k": "v"},
		Any:    []int{1},
		Total:  42,
		Frozen: []int{9},
		Secret: "hidden",
	}
}

type history struct {
	Events []string
}

// tracked reaches a slice through an embedded struct pointer.
type tracked struct {
	*history

	Name string
}

// journal reaches a slice through two embedded struct pointers.
type journal struct {
	*tracked

	Notes []string
}
