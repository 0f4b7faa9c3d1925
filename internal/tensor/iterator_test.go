package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorIsForwardOnly(t *testing.T) {
	tn := New[float64]("", Shape{3, 3}, CSR)
	tn.Insert([]int{0, 0}, 1)
	tn.Insert([]int{1, 1}, 2)
	tn.Pack()

	it := tn.Iterator()
	for it.Next() {
	}
	assert.False(t, it.Next(), "exhausted iterators stay exhausted")

	// Re-iterating requires a fresh instance.
	fresh := tn.Iterator()
	count := 0
	for fresh.Next() {
		count++
	}
	assert.Equal(t, 2, count)
}

func TestIteratorEmptyTensor(t *testing.T) {
	tn := New[float64]("", Shape{4, 4}, UniformFormat(Compressed, 2))
	tn.Pack()
	assert.False(t, tn.Iterator().Next())
}

func TestIteratorCoordinateTypes(t *testing.T) {
	tn := New[float64]("", Shape{10, 20}, CSR)
	tn.Insert([]int{9, 19}, 1.5)
	tn.Pack()

	narrow := NewIterator[uint8, float64](tn.TensorBase)
	require.True(t, narrow.Next())
	assert.Equal(t, []uint8{9, 19}, narrow.Coordinate())
	assert.Equal(t, 1.5, narrow.Value())

	wide := NewIterator[int64, float64](tn.TensorBase)
	require.True(t, wide.Next())
	assert.Equal(t, []int64{9, 19}, wide.Coordinate())
}

func TestIteratorCoordinateTypeTooNarrow(t *testing.T) {
	tn := New[float64]("", Shape{300, 2}, CSR)
	tn.Pack()
	assert.Panics(t, func() { NewIterator[uint8, float64](tn.TensorBase) },
		"dimension 300 does not fit uint8")
	assert.NotPanics(t, func() { NewIterator[int16, float64](tn.TensorBase) })
}

func TestIteratorComponentTypeMismatch(t *testing.T) {
	tn := New[float64]("", Shape{2}, NewFormat(Dense))
	tn.Pack()
	assert.Panics(t, func() { NewIterator[int, float32](tn.TensorBase) })
}

func TestIteratorScalarTerminates(t *testing.T) {
	s := NewScalar(4.0)
	it := s.Iterator()
	require.True(t, it.Next())
	assert.Equal(t, 4.0, it.Value())
	assert.False(t, it.Next())
	assert.False(t, it.Next())
}

func TestUnsupportedModeKind(t *testing.T) {
	s := NewStorage(Format{kinds: []ModeKind{ModeKind(42)}, ordering: []int{0}})
	s.SetIndex(Index{format: s.Format(), modes: []ModeIndex{DenseModeIndex(1)}})
	assert.Panics(t, func() {
		cu := &cursor{
			storage:  s,
			kinds:    s.Format().ModeKinds(),
			ordering: s.Format().ModeOrdering(),
			coord:    make([]int, 1),
			ptrs:     make([]int, 1),
			logical:  make([]int, 1),
			total:    1,
		}
		cu.next()
	})
}
