package tensor

import (
	"fmt"
	"strings"
)

// ModeKind selects the storage strategy of a single tensor mode.
type ModeKind int

const (
	// Dense modes are stored implicitly by size; every coordinate in range
	// exists.
	Dense ModeKind = iota
	// Compressed modes store only the coordinates that are present, via
	// position and coordinate arrays.
	Compressed
)

// Sparse is a conventional alias for Compressed.
const Sparse = Compressed

// String returns a human-readable name for the mode kind.
func (k ModeKind) String() string {
	switch k {
	case Dense:
		return "dense"
	case Compressed:
		return "compressed"
	default:
		return "unknown"
	}
}

// Format describes the physical layout of a tensor: one storage kind per
// mode plus a mode ordering, the permutation mapping physical nesting
// position to logical mode. Formats are immutable after construction;
// changing format means building a new Format and re-packing into new
// Storage.
type Format struct {
	kinds    []ModeKind
	ordering []int
}

// NewFormat creates a format with the given per-mode storage kinds and the
// identity mode ordering (row-major logical order).
func NewFormat(kinds ...ModeKind) Format {
	ordering := make([]int, len(kinds))
	for i := range ordering {
		ordering[i] = i
	}
	return NewOrderedFormat(kinds, ordering)
}

// NewOrderedFormat creates a format with the given per-mode storage kinds
// and an explicit mode ordering. The ordering must be a permutation of
// [0, len(kinds)).
func NewOrderedFormat(kinds []ModeKind, modeOrdering []int) Format {
	if len(kinds) != len(modeOrdering) {
		panic(fmt.Sprintf("format has %d mode kinds but a mode ordering of length %d",
			len(kinds), len(modeOrdering)))
	}
	if !isPermutation(modeOrdering) {
		panic(fmt.Sprintf("mode ordering %v is not a permutation of [0, %d)",
			modeOrdering, len(modeOrdering)))
	}
	f := Format{
		kinds:    make([]ModeKind, len(kinds)),
		ordering: make([]int, len(modeOrdering)),
	}
	copy(f.kinds, kinds)
	copy(f.ordering, modeOrdering)
	return f
}

// isPermutation reports whether perm is a permutation of [0, len(perm)).
func isPermutation(perm []int) bool {
	seen := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

// UniformFormat creates a format storing every one of order modes with the
// same kind, identity ordering.
func UniformFormat(kind ModeKind, order int) Format {
	kinds := make([]ModeKind, order)
	for i := range kinds {
		kinds[i] = kind
	}
	return NewFormat(kinds...)
}

// Classical 2-D layouts.
var (
	// CSR is the compressed sparse row matrix format: dense rows over
	// compressed columns.
	CSR = NewOrderedFormat([]ModeKind{Dense, Compressed}, []int{0, 1})

	// CSC is the compressed sparse column matrix format: dense columns over
	// compressed rows.
	CSC = NewOrderedFormat([]ModeKind{Dense, Compressed}, []int{1, 0})
)

// Order returns the number of modes.
func (f Format) Order() int {
	return len(f.kinds)
}

// Kind returns the storage kind of the mode at physical position pos.
func (f Format) Kind(pos int) ModeKind {
	return f.kinds[pos]
}

// ModeKinds returns the per-mode storage kinds in physical order.
func (f Format) ModeKinds() []ModeKind {
	return f.kinds
}

// ModeOrdering returns the permutation mapping physical position to logical
// mode.
func (f Format) ModeOrdering() []int {
	return f.ordering
}

// Equals reports structural equality: same kind sequence and same ordering.
func (f Format) Equals(other Format) bool {
	if len(f.kinds) != len(other.kinds) {
		return false
	}
	for i := range f.kinds {
		if f.kinds[i] != other.kinds[i] || f.ordering[i] != other.ordering[i] {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the format.
func (f Format) String() string {
	kinds := make([]string, len(f.kinds))
	for i, k := range f.kinds {
		kinds[i] = k.String()
	}
	return fmt.Sprintf("({%s}; %v)", strings.Join(kinds, ","), f.ordering)
}
