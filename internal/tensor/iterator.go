package tensor

import "fmt"

// cursor walks a packed Storage depth-first in physical (mode-ordering)
// lexicographic order. Go has no resumable stack frames across arbitrary
// recursion, so the traversal is a hand-rolled generator: one saved loop
// cursor per level plus a resume flag, re-entered from the top on every
// step.
type cursor struct {
	storage  *Storage
	kinds    []ModeKind
	ordering []int
	coord    []int // per-level physical coordinate (loop cursor)
	ptrs     []int // per-level flat pointer (loop cursor)
	logical  []int // logical coordinate of the produced entry
	vpos     int   // value index of the produced entry
	resume   bool
	produced int
	total    int
}

func newCursor(s *Storage) *cursor {
	order := s.Format().Order()
	s.Values() // surfaces an index/values mismatch before traversal
	return &cursor{
		storage:  s,
		kinds:    s.Format().ModeKinds(),
		ordering: s.Format().ModeOrdering(),
		coord:    make([]int, order),
		ptrs:     make([]int, order),
		logical:  make([]int, order),
		total:    s.Size(),
	}
}

// next advances to the next leaf entry, filling logical and vpos. It
// returns false once the sequence is exhausted; a cursor cannot be
// restarted.
func (cu *cursor) next() bool {
	if cu.produced >= cu.total {
		return false
	}
	if !cu.advance(0) {
		return false
	}
	cu.produced++
	return true
}

func (cu *cursor) advance(lvl int) bool {
	if lvl == len(cu.kinds) {
		if cu.resume {
			// The leaf produced last time is spent; backtrack.
			cu.resume = false
			return false
		}
		if lvl == 0 {
			cu.vpos = 0
		} else {
			cu.vpos = cu.ptrs[lvl-1]
		}
		for i, mode := range cu.ordering {
			cu.logical[mode] = cu.coord[i]
		}
		cu.resume = true
		return true
	}

	mode := cu.storage.Index().Mode(lvl)
	switch cu.kinds[lvl] {
	case Dense:
		size := mode.IndexArray(0).Get(0).Int()
		base := 0
		if lvl > 0 {
			base = cu.ptrs[lvl-1] * size
		}
		if !cu.resume {
			cu.coord[lvl] = 0
		}
		for ; cu.coord[lvl] < size; cu.coord[lvl]++ {
			cu.ptrs[lvl] = base + cu.coord[lvl]
			if cu.advance(lvl + 1) {
				return true
			}
		}
	case Compressed:
		pos := mode.IndexArray(0)
		idx := mode.IndexArray(1)
		parent := 0
		if lvl > 0 {
			parent = cu.ptrs[lvl-1]
		}
		if !cu.resume {
			cu.ptrs[lvl] = pos.Get(parent).Int()
		}
		for ; cu.ptrs[lvl] < pos.Get(parent+1).Int(); cu.ptrs[lvl]++ {
			cu.coord[lvl] = idx.Get(cu.ptrs[lvl]).Int()
			if cu.advance(lvl + 1) {
				return true
			}
		}
	default:
		panic(fmt.Sprintf("mode kind %v is not supported", cu.kinds[lvl]))
	}
	return false
}

// CoordType is a constraint for iterator coordinate types. The coordinate
// width is independent of the engine's internal index width; the iterator
// converts between them.
type CoordType interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Iterator produces the (logical coordinate, value) entries of a packed
// tensor lazily, in physical (mode-ordering) lexicographic order. An
// iterator is forward-only; re-iterating requires a fresh instance.
// Mutating the tensor while an iterator is live invalidates the iterator.
type Iterator[C CoordType, T ComponentType] struct {
	cur    *cursor
	values []T
	coord  []C
	val    T
}

// NewIterator creates an iterator over a packed tensor with coordinate type
// C. Every declared dimension must be representable in C without losing
// precision.
func NewIterator[C CoordType, T ComponentType](t TensorBase) *Iterator[C, T] {
	var dummy T
	if dt := inferDataType(dummy); dt != t.ComponentType() {
		panic(fmt.Sprintf("cannot iterate a tensor with %s components as %s",
			t.ComponentType(), dt))
	}
	for mode, dim := range t.Dimensions() {
		if int(C(dim-1)) != dim-1 {
			panic(fmt.Sprintf("dimension %d of size %d does not fit the coordinate type", mode, dim))
		}
	}
	return &Iterator[C, T]{
		cur:    newCursor(t.Storage()),
		values: Slice[T](t.Storage().Values()),
		coord:  make([]C, t.Order()),
	}
}

// Next advances to the next entry, returning false once the sequence is
// exhausted.
func (it *Iterator[C, T]) Next() bool {
	if !it.cur.next() {
		return false
	}
	for i, c := range it.cur.logical {
		it.coord[i] = C(c)
	}
	it.val = it.values[it.cur.vpos]
	return true
}

// Coordinate returns the logical coordinate of the current entry. The slice
// is reused; it is only valid until the next call to Next.
func (it *Iterator[C, T]) Coordinate() []C {
	return it.coord
}

// Value returns the component value of the current entry.
func (it *Iterator[C, T]) Value() T {
	return it.val
}
