package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeCSRBorrowsArrays(t *testing.T) {
	// 3x4 matrix: row 0 -> (0,1)=10; row 2 -> (2,0)=20, (2,3)=30.
	rowptr := []int32{0, 1, 1, 3}
	colidx := []int32{1, 0, 3}
	vals := []float64{10, 20, 30}

	m := MakeCSR("A", Shape{3, 4}, rowptr, colidx, vals)
	require.True(t, m.Format().Equals(CSR))
	require.Equal(t, 3, m.Storage().Size())

	coords, got := collectEntries(m)
	assert.Equal(t, [][]int{{0, 1}, {2, 0}, {2, 3}}, coords)
	assert.Equal(t, []float64{10, 20, 30}, got)

	// The accessor returns the caller's own arrays, not copies.
	rp, ci, vs := CSRArrays(m)
	assert.Same(t, &rowptr[0], &rp[0])
	assert.Same(t, &colidx[0], &ci[0])
	assert.Same(t, &vals[0], &vs[0])

	// Mutating the caller's values array is visible through the tensor.
	vals[1] = 99
	_, got = collectEntries(m)
	assert.Equal(t, []float64{10, 99, 30}, got)

	// The engine never reallocated the borrowed memory.
	assert.False(t, m.Storage().Values().Owned())
}

func TestMakeCSCBorrowsArrays(t *testing.T) {
	// 3x3 matrix in column-major compression: col 0 -> (1,0)=1; col 2 -> (0,2)=2.
	colptr := []int32{0, 1, 1, 2}
	rowidx := []int32{1, 0}
	vals := []float32{1, 2}

	m := MakeCSC("B", Shape{3, 3}, colptr, rowidx, vals)
	require.True(t, m.Format().Equals(CSC))

	coords, got := collectEntries(m)
	assert.Equal(t, [][]int{{1, 0}, {0, 2}}, coords)
	assert.Equal(t, []float32{1, 2}, got)

	cp, ri, vs := CSCArrays(m)
	assert.Same(t, &colptr[0], &cp[0])
	assert.Same(t, &rowidx[0], &ri[0])
	assert.Same(t, &vals[0], &vs[0])
}

func TestCSRRequiresMatrix(t *testing.T) {
	assert.Panics(t, func() {
		MakeCSR("A", Shape{3}, []int32{0}, nil, []float64(nil))
	})
}

func TestCSRAccessorFormatCheck(t *testing.T) {
	m := New[float64]("A", Shape{2, 2}, NewFormat(Dense, Dense))
	m.Pack()
	assert.Panics(t, func() { CSRArrays(m) })
	assert.Panics(t, func() { CSCArrays(m) })
}

func TestPackedTensorExposesCSRArrays(t *testing.T) {
	m := New[float64]("A", Shape{2, 3}, CSR)
	m.Insert([]int{0, 2}, 1)
	m.Insert([]int{1, 1}, 2)
	m.Pack()

	rowptr, colidx, vals := CSRArrays(m)
	assert.Equal(t, []int32{0, 1, 2}, rowptr)
	assert.Equal(t, []int32{2, 1}, colidx)
	assert.Equal(t, []float64{1, 2}, vals)
}
