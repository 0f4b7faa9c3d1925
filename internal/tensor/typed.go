package tensor

import "fmt"

// Tensor is a compile-time typed handle over TensorBase. Like TensorBase,
// copies alias the same tensor.
type Tensor[T ComponentType] struct {
	TensorBase
}

// New creates a tensor with the given dimensions and format. An empty name
// is replaced with a generated one.
func New[T ComponentType](name string, dims Shape, format Format) Tensor[T] {
	var dummy T
	return Tensor[T]{NewTensorBase(name, inferDataType(dummy), dims, format)}
}

// NewSparse creates a tensor stored compressed in every mode, the default
// layout for sparse data.
func NewSparse[T ComponentType](name string, dims Shape) Tensor[T] {
	return New[T](name, dims, UniformFormat(Compressed, len(dims)))
}

// NewScalar creates a packed order-0 tensor holding the given value.
func NewScalar[T ComponentType](v T) Tensor[T] {
	t := New[T]("", Shape{}, NewFormat())
	t.Insert([]int{}, v)
	t.Pack()
	return t
}

// FromBase wraps an untyped handle in a typed one (a shallow copy; both
// handles reference the same tensor). Panics if the component types differ.
func FromBase[T ComponentType](b TensorBase) Tensor[T] {
	var dummy T
	if dt := inferDataType(dummy); dt != b.ComponentType() {
		panic(fmt.Sprintf("assigning a TensorBase with %s components to a Tensor[%s]",
			b.ComponentType(), dt))
	}
	return Tensor[T]{b}
}

// Insert appends a coordinate/value pair to the coordinate buffer. The
// number of coordinates must match the tensor order.
func (t Tensor[T]) Insert(coord []int, v T) {
	t.TensorBase.Insert(coord, ValueOf(v))
}

// Scalar returns the single value of a packed order-0 tensor.
func (t Tensor[T]) Scalar() T {
	if t.Order() != 0 {
		panic(fmt.Sprintf("Scalar only works for order-0 tensors, got order %d", t.Order()))
	}
	return Slice[T](t.Storage().Values())[0]
}

// Iterator returns a fresh iterator over the packed tensor with int
// coordinates. Use NewIterator to pick a different coordinate type.
func (t Tensor[T]) Iterator() *Iterator[int, T] {
	return NewIterator[int, T](t.TensorBase)
}

// Transpose packs a new tensor holding this tensor's entries under a new
// mode ordering, keeping the current format.
func (t Tensor[T]) Transpose(newModeOrdering []int) Tensor[T] {
	return t.TransposeFormat("", newModeOrdering, t.Format())
}

// TransposeFormat packs a new tensor holding this tensor's entries under a
// new mode ordering and format. Position i of the new tensor's coordinates
// takes logical mode newModeOrdering[i] of this tensor's.
func (t Tensor[T]) TransposeFormat(name string, newModeOrdering []int, format Format) Tensor[T] {
	if len(newModeOrdering) != t.Order() || !isPermutation(newModeOrdering) {
		panic(fmt.Sprintf("mode ordering %v is not a permutation of [0, %d)",
			newModeOrdering, t.Order()))
	}

	out := New[T](name, t.Dimensions().Permute(newModeOrdering), format)
	it := t.Iterator()
	coord := make([]int, t.Order())
	for it.Next() {
		for i, mode := range newModeOrdering {
			coord[i] = it.Coordinate()[mode]
		}
		out.Insert(coord, it.Value())
	}
	out.Pack()
	return out
}
