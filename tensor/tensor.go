// Copyright 2025 Mosaic ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/mosaic-ml/mosaic/internal/tensor"
)

// Type aliases for public API

// ComponentType is a constraint for tensor component types.
// Supported types: the fixed-width integer kinds and float32/float64.
type ComponentType = tensor.ComponentType

// DataType represents the runtime type of buffer elements.
type DataType = tensor.DataType

// Data type constants.
const (
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Value is a runtime-typed scalar with tag-dispatched arithmetic.
type Value = tensor.Value

// Array is a homogeneous, runtime-typed buffer, engine-owned or borrowed
// from the caller.
type Array = tensor.Array

// Shape represents the dimensions of a tensor, one extent per mode.
type Shape = tensor.Shape

// ModeKind selects the storage strategy of a single tensor mode.
type ModeKind = tensor.ModeKind

// Mode kind constants.
const (
	Dense      ModeKind = tensor.Dense
	Compressed ModeKind = tensor.Compressed
	Sparse     ModeKind = tensor.Sparse
)

// Format describes a tensor's physical layout: per-mode storage kinds plus
// a mode ordering.
type Format = tensor.Format

// Classical 2-D layouts.
var (
	CSR = tensor.CSR
	CSC = tensor.CSC
)

// ModeIndex is the physical metadata of a single mode.
type ModeIndex = tensor.ModeIndex

// Index is the physical metadata of a packed tensor.
type Index = tensor.Index

// Storage pairs an Index with a values buffer; the canonical representation
// of a packed tensor.
type Storage = tensor.Storage

// TensorBase is a runtime-typed tensor reference. Copies alias the same
// tensor.
type TensorBase = tensor.TensorBase

// Tensor is a compile-time typed tensor reference.
//
// Like TensorBase, copying a Tensor copies the reference: subsequent method
// calls affect both references. Only an explicit compute-expression
// assignment produces an independent tensor.
type Tensor[T ComponentType] = tensor.Tensor[T]

// CoordType is a constraint for iterator coordinate types.
type CoordType = tensor.CoordType

// Iterator produces the entries of a packed tensor lazily, in
// mode-ordering order.
type Iterator[C CoordType, T ComponentType] = tensor.Iterator[C, T]

// Kernel is the opaque compiled form of a tensor-algebra assignment.
type Kernel = tensor.Kernel

// Compiler lowers assignments into executable kernels. Implementations live
// outside the storage engine.
type Compiler = tensor.Compiler

// DefaultAllocSize is the default initial size of the coordinate buffer,
// in bytes.
const DefaultAllocSize = tensor.DefaultAllocSize

// Construction functions

// New creates a tensor with the given dimensions and format. An empty name
// is replaced with a generated one.
//
// Example:
//
//	A := tensor.New[float64]("A", tensor.Shape{3, 3}, tensor.CSR)
func New[T ComponentType](name string, dims Shape, format Format) Tensor[T] {
	return tensor.New[T](name, dims, format)
}

// NewSparse creates a tensor stored compressed in every mode.
func NewSparse[T ComponentType](name string, dims Shape) Tensor[T] {
	return tensor.NewSparse[T](name, dims)
}

// NewScalar creates a packed order-0 tensor holding the given value.
//
// Example:
//
//	s := tensor.NewScalar(3.5)
//	v := s.Scalar() // 3.5
func NewScalar[T ComponentType](v T) Tensor[T] {
	return tensor.NewScalar(v)
}

// FromBase wraps an untyped handle in a typed one (a shallow copy).
func FromBase[T ComponentType](b TensorBase) Tensor[T] {
	return tensor.FromBase[T](b)
}

// NewTensorBase creates a runtime-typed tensor with the given component
// type, dimensions and format.
func NewTensorBase(name string, ctype DataType, dims Shape, format Format) TensorBase {
	return tensor.NewTensorBase(name, ctype, dims, format)
}

// NewFormat creates a format with the given per-mode storage kinds and the
// identity mode ordering.
func NewFormat(kinds ...ModeKind) Format {
	return tensor.NewFormat(kinds...)
}

// NewOrderedFormat creates a format with an explicit mode ordering.
//
// Example:
//
//	csf := tensor.NewOrderedFormat(
//	    []tensor.ModeKind{tensor.Compressed, tensor.Compressed, tensor.Compressed},
//	    []int{2, 0, 1})
func NewOrderedFormat(kinds []ModeKind, modeOrdering []int) Format {
	return tensor.NewOrderedFormat(kinds, modeOrdering)
}

// UniformFormat creates a format storing every mode with the same kind.
func UniformFormat(kind ModeKind, order int) Format {
	return tensor.UniformFormat(kind, order)
}

// NewIterator creates an iterator over a packed tensor with coordinate
// type C. Every declared dimension must fit C without losing precision.
//
// Example:
//
//	it := tensor.NewIterator[int32, float64](A.TensorBase)
func NewIterator[C CoordType, T ComponentType](t TensorBase) *Iterator[C, T] {
	return tensor.NewIterator[C, T](t)
}

// Equals reports whether two tensors have the same component type,
// dimensions, and (coordinate, value) entries.
func Equals(a, b TensorBase) bool {
	return tensor.Equals(a, b)
}

// Zero-copy interop

// MakeCSR constructs a compressed sparse row matrix over caller-owned
// rowptr/colidx/vals slices. The slices are borrowed, never copied or
// freed.
func MakeCSR[T ComponentType](name string, dims Shape, rowptr, colidx []int32, vals []T) Tensor[T] {
	return tensor.MakeCSR(name, dims, rowptr, colidx, vals)
}

// CSRArrays returns the arrays that make up a CSR tensor without copying or
// transferring ownership.
func CSRArrays[T ComponentType](t Tensor[T]) (rowptr, colidx []int32, vals []T) {
	return tensor.CSRArrays(t)
}

// MakeCSC constructs a compressed sparse column matrix over caller-owned
// colptr/rowidx/vals slices. The slices are borrowed, never copied or
// freed.
func MakeCSC[T ComponentType](name string, dims Shape, colptr, rowidx []int32, vals []T) Tensor[T] {
	return tensor.MakeCSC(name, dims, colptr, rowidx, vals)
}

// CSCArrays returns the arrays that make up a CSC tensor without copying or
// transferring ownership.
func CSCArrays[T ComponentType](t Tensor[T]) (colptr, rowidx []int32, vals []T) {
	return tensor.CSCArrays(t)
}

// Low-level building blocks

// ValueOf wraps a Go numeric value in a runtime-typed Value.
func ValueOf[T ComponentType](v T) Value {
	return tensor.ValueOf(v)
}

// ZeroValue returns the zero of the given data type.
func ZeroValue(dt DataType) Value {
	return tensor.ZeroValue(dt)
}

// NewArray allocates an engine-owned, zero-filled array of n elements.
func NewArray(dt DataType, n int) Array {
	return tensor.NewArray(dt, n)
}

// BorrowArray wraps a caller-owned slice without copying.
func BorrowArray[T ComponentType](s []T) Array {
	return tensor.BorrowArray(s)
}

// ArrayFrom copies a Go slice into a new engine-owned array.
func ArrayFrom[T ComponentType](s []T) Array {
	return tensor.ArrayFrom(s)
}

// Slice returns a typed view of an array's memory (zero-copy).
func Slice[T ComponentType](a Array) []T {
	return tensor.Slice[T](a)
}

// NewStorage creates empty storage for the given format.
func NewStorage(format Format) *Storage {
	return tensor.NewStorage(format)
}

// NewIndex creates an index for the given format, one ModeIndex per mode.
func NewIndex(format Format, modes ...ModeIndex) Index {
	return tensor.NewIndex(format, modes...)
}

// DenseModeIndex creates the metadata of a dense mode of the given size.
func DenseModeIndex(size int) ModeIndex {
	return tensor.DenseModeIndex(size)
}

// CompressedModeIndex creates the metadata of a compressed mode from its
// position and coordinate arrays.
func CompressedModeIndex(pos, idx Array) ModeIndex {
	return tensor.CompressedModeIndex(pos, idx)
}

// MakeCSRIndex builds a CSR matrix index over caller-owned arrays.
func MakeCSRIndex(numRows int, rowptr, colidx []int32) Index {
	return tensor.MakeCSRIndex(numRows, rowptr, colidx)
}

// MakeCSCIndex builds a CSC matrix index over caller-owned arrays.
func MakeCSCIndex(numCols int, colptr, rowidx []int32) Index {
	return tensor.MakeCSCIndex(numCols, colptr, rowidx)
}
