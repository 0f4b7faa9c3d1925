package tensor

import "fmt"

// MakeCSR constructs a compressed sparse row matrix over caller-owned
// rowptr/colidx/vals slices. The slices are borrowed, never copied or
// freed: mutations through the caller's slices stay visible through the
// tensor and vice versa.
func MakeCSR[T ComponentType](name string, dims Shape, rowptr, colidx []int32, vals []T) Tensor[T] {
	if len(dims) != 2 {
		panic(fmt.Sprintf("CSR requires a matrix, got order %d", len(dims)))
	}
	t := New[T](name, dims, CSR)
	storage := t.Storage()
	storage.SetIndex(MakeCSRIndex(dims[0], rowptr, colidx))
	storage.SetValues(BorrowArray(vals))
	t.markPacked()
	return t
}

// CSRArrays returns the arrays that make up a CSR tensor, without copying
// or transferring ownership. The returned slices alias the tensor's
// storage.
func CSRArrays[T ComponentType](t Tensor[T]) (rowptr, colidx []int32, vals []T) {
	if !t.Format().Equals(CSR) {
		panic(fmt.Sprintf("tensor %s is not in the CSR format", t.Name()))
	}
	index := t.Storage().Index()
	rowptr = Slice[int32](index.Mode(1).IndexArray(0))
	colidx = Slice[int32](index.Mode(1).IndexArray(1))
	vals = Slice[T](t.Storage().Values())
	return rowptr, colidx, vals
}

// MakeCSC constructs a compressed sparse column matrix over caller-owned
// colptr/rowidx/vals slices. The slices are borrowed, never copied or
// freed.
func MakeCSC[T ComponentType](name string, dims Shape, colptr, rowidx []int32, vals []T) Tensor[T] {
	if len(dims) != 2 {
		panic(fmt.Sprintf("CSC requires a matrix, got order %d", len(dims)))
	}
	t := New[T](name, dims, CSC)
	storage := t.Storage()
	storage.SetIndex(MakeCSCIndex(dims[1], colptr, rowidx))
	storage.SetValues(BorrowArray(vals))
	t.markPacked()
	return t
}

// CSCArrays returns the arrays that make up a CSC tensor, without copying
// or transferring ownership. The returned slices alias the tensor's
// storage.
func CSCArrays[T ComponentType](t Tensor[T]) (colptr, rowidx []int32, vals []T) {
	if !t.Format().Equals(CSC) {
		panic(fmt.Sprintf("tensor %s is not in the CSC format", t.Name()))
	}
	index := t.Storage().Index()
	colptr = Slice[int32](index.Mode(1).IndexArray(0))
	rowidx = Slice[int32](index.Mode(1).IndexArray(1))
	vals = Slice[T](t.Storage().Values())
	return colptr, rowidx, vals
}
