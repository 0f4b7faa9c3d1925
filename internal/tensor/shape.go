package tensor

import "fmt"

// Shape represents the dimensions of a tensor: one extent per mode, fixed at
// construction.
type Shape []int

// Order returns the number of modes.
func (s Shape) Order() int {
	return len(s)
}

// NumElements returns the total number of coordinate positions in the shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Permute returns the shape reordered so that position i holds s[perm[i]].
func (s Shape) Permute(perm []int) Shape {
	out := make(Shape, len(s))
	for i, mode := range perm {
		out[i] = s[mode]
	}
	return out
}
