package tensor

import (
	"fmt"
	"slices"
)

// content is the shared state behind tensor handles. Handle copies alias
// the same content: mutation through one handle is visible through all, and
// the content lives until the last handle is dropped.
type content struct {
	name      string
	ctype     DataType
	dims      Shape
	format    Format
	storage   *Storage
	buffer    *coordinateBuffer
	allocSize int
	packed    bool

	assignment any
	kernel     Kernel
	source     string
}

// TensorBase is a reference to a tensor with runtime-typed components.
// Copying a TensorBase copies the reference, and subsequent method calls
// affect both references; only an explicit compute-expression assignment
// produces an independent tensor. Use the generic Tensor[T] for a
// compile-time typed API.
type TensorBase struct {
	c *content
}

// NewTensorBase creates a tensor with the given component type, dimensions
// and format. An empty name is replaced with a generated one. Dimensions
// and format are fixed for the lifetime of the tensor.
func NewTensorBase(name string, ctype DataType, dims Shape, format Format) TensorBase {
	if format.Order() != len(dims) {
		panic(fmt.Sprintf("tensor of order %d cannot use a format of order %d",
			len(dims), format.Order()))
	}
	if err := dims.Validate(); err != nil {
		panic(fmt.Sprintf("invalid dimensions: %v", err))
	}
	if name == "" {
		name = uniqueName("A")
	}
	return TensorBase{c: &content{
		name:      name,
		ctype:     ctype,
		dims:      dims.Clone(),
		format:    format,
		storage:   NewStorage(format),
		buffer:    newCoordinateBuffer(len(dims), ctype),
		allocSize: DefaultAllocSize,
	}}
}

// Name returns the name of the tensor.
func (t TensorBase) Name() string {
	return t.c.name
}

// SetName sets the name of the tensor.
func (t TensorBase) SetName(name string) {
	t.c.name = name
}

// Order returns the order of the tensor (the number of modes).
func (t TensorBase) Order() int {
	return len(t.c.dims)
}

// Dimension returns the extent of a tensor mode.
func (t TensorBase) Dimension(mode int) int {
	if mode < 0 || mode >= len(t.c.dims) {
		panic(fmt.Sprintf("tensor of order %d has no mode %d", len(t.c.dims), mode))
	}
	return t.c.dims[mode]
}

// Dimensions returns the extent of each tensor mode.
func (t TensorBase) Dimensions() Shape {
	return t.c.dims
}

// ComponentType returns the type of the tensor components.
func (t TensorBase) ComponentType() DataType {
	return t.c.ctype
}

// Format returns the format the tensor is packed into.
func (t TensorBase) Format() Format {
	return t.c.format
}

// Storage returns the tensor's storage. Values are laid out according to
// the tensor's format.
func (t TensorBase) Storage() *Storage {
	return t.c.storage
}

// Packed reports whether the tensor's storage holds packed data.
func (t TensorBase) Packed() bool {
	return t.c.packed
}

func (t TensorBase) markPacked() {
	t.c.packed = true
}

// SetAllocSize sets the initial size of the coordinate buffer, in bytes.
func (t TensorBase) SetAllocSize(size int) {
	if size <= 0 {
		panic(fmt.Sprintf("invalid alloc size %d", size))
	}
	t.c.allocSize = size
}

// AllocSize returns the initial size of the coordinate buffer, in bytes.
func (t TensorBase) AllocSize() int {
	return t.c.allocSize
}

// Reserve reserves space for n additional coordinate insertions.
func (t TensorBase) Reserve(n int) {
	t.c.buffer.reserve(n, t.c.allocSize)
}

// Insert appends a coordinate/value pair to the coordinate buffer. The
// number of coordinates must match the tensor order and the value's type
// must match the component type; a failed insert leaves the buffer
// untouched. Coordinates are not bounds-checked or deduplicated here; both
// happen during Pack.
func (t TensorBase) Insert(coord []int, v Value) {
	c := t.c
	if len(coord) != len(c.dims) {
		panic(fmt.Sprintf("wrong number of indices: got %d, tensor %s has order %d",
			len(coord), c.name, len(c.dims)))
	}
	if v.DataType() != c.ctype {
		panic(fmt.Sprintf("cannot insert a value of type %s into a tensor with component type %s",
			v.DataType(), c.ctype))
	}
	c.buffer.append(coord, v, c.allocSize)
}

// Pack compiles every coordinate inserted since the last pack into the
// tensor's storage. Packing after a previous pack merges the new entries
// with the already packed ones, as if the whole union were packed at once.
// Entries sharing a coordinate are summed.
func (t TensorBase) Pack() {
	c := t.c
	order := len(c.dims)

	entries := make([]packEntry, 0, c.buffer.len())
	if c.packed {
		// Re-stage the previously packed entries so the sort sees the union.
		cur := newCursor(c.storage)
		vals := c.storage.Values()
		for cur.next() {
			coord := make([]int, order)
			copy(coord, cur.logical)
			entries = append(entries, packEntry{coord: coord, val: vals.Get(cur.vpos)})
		}
	}
	for i := 0; i < c.buffer.len(); i++ {
		coord := make([]int, order)
		val := c.buffer.record(i, coord)
		entries = append(entries, packEntry{coord: coord, val: val})
	}

	index, values := packEntries(c.format, c.dims, c.ctype, entries)
	c.storage.SetIndex(index)
	c.storage.SetValues(values)
	c.buffer.clear()
	c.packed = true
}

// Zero zeroes out the packed values in place, keeping the index structure.
func (t TensorBase) Zero() {
	clear(t.c.storage.Values().Bytes())
}

// Is reports whether two handles refer to the same tensor.
func (t TensorBase) Is(other TensorBase) bool {
	return t.c == other.c
}

// String returns a human-readable representation of the tensor.
func (t TensorBase) String() string {
	return fmt.Sprintf("%s (%v, %s, %s)", t.c.name, []int(t.c.dims), t.c.ctype, t.c.format)
}

// Equals reports whether two tensors have the same component type, the same
// dimensions, and the same (coordinate, value) entries under iteration.
func Equals(a, b TensorBase) bool {
	if a.ComponentType() != b.ComponentType() || !a.Dimensions().Equal(b.Dimensions()) {
		return false
	}
	ca, cb := newCursor(a.Storage()), newCursor(b.Storage())
	va, vb := a.Storage().Values(), b.Storage().Values()
	for {
		na, nb := ca.next(), cb.next()
		if na != nb {
			return false
		}
		if !na {
			return true
		}
		if !slices.Equal(ca.logical, cb.logical) {
			return false
		}
		if !va.Get(ca.vpos).Equal(vb.Get(cb.vpos)) {
			return false
		}
	}
}
