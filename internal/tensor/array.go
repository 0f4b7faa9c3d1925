package tensor

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// Array is a homogeneous, runtime-typed buffer of numeric values. It backs
// component values as well as the position/coordinate arrays of compressed
// modes. An array either owns its allocation (engine-built) or borrows
// caller-owned memory, in which case the engine never copies or frees it and
// writes through either view stay visible to both sides.
type Array struct {
	dtype DataType
	data  []byte
	n     int
	owned bool
}

// NewArray allocates an engine-owned, zero-filled array of n elements.
func NewArray(dt DataType, n int) Array {
	if n < 0 {
		panic(fmt.Sprintf("invalid array length %d", n))
	}
	return Array{
		dtype: dt,
		data:  make([]byte, n*dt.Size()),
		n:     n,
		owned: true,
	}
}

// BorrowArray wraps a caller-owned slice without copying. The resulting
// array is marked as non-owning; mutations through the original slice are
// visible through the array and vice versa.
func BorrowArray[T ComponentType](s []T) Array {
	var dummy T
	dt := inferDataType(dummy)
	a := Array{dtype: dt, n: len(s)}
	if len(s) > 0 {
		//nolint:gosec // zero-copy view over caller memory, length fixed by len(s)
		a.data = unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*dt.Size())
	}
	return a
}

// ArrayFrom copies a Go slice into a new engine-owned array.
func ArrayFrom[T ComponentType](s []T) Array {
	var dummy T
	a := NewArray(inferDataType(dummy), len(s))
	copy(Slice[T](a), s)
	return a
}

// Slice returns a typed view of the array's memory (zero-copy).
// Panics if T does not match the array's data type.
func Slice[T ComponentType](a Array) []T {
	var dummy T
	if dt := inferDataType(dummy); dt != a.dtype {
		panic(fmt.Sprintf("array data type is %s, not %s", a.dtype, dt))
	}
	if a.n == 0 {
		return nil
	}
	//nolint:gosec // zero-copy view, bounds fixed by element count
	return unsafe.Slice((*T)(unsafe.Pointer(&a.data[0])), a.n)
}

// DataType returns the array's runtime type tag.
func (a Array) DataType() DataType {
	return a.dtype
}

// Len returns the number of elements.
func (a Array) Len() int {
	return a.n
}

// Bytes returns the raw backing memory.
// WARNING: direct access to underlying memory. Use with caution.
func (a Array) Bytes() []byte {
	return a.data
}

// Owned reports whether the engine owns the backing memory. Borrowed arrays
// wrap caller memory and are never reallocated in place.
func (a Array) Owned() bool {
	return a.owned
}

func (a Array) boundsCheck(i int) {
	if i < 0 || i >= a.n {
		panic(fmt.Sprintf("index %d out of bounds for array of length %d", i, a.n))
	}
}

// loadBits and storeBits move raw element bits in native byte order, the
// same order the unsafe typed views use.
func loadBits(p []byte, size int) uint64 {
	switch size {
	case 1:
		return uint64(p[0])
	case 2:
		return uint64(binary.NativeEndian.Uint16(p))
	case 4:
		return uint64(binary.NativeEndian.Uint32(p))
	default:
		return binary.NativeEndian.Uint64(p)
	}
}

func storeBits(p []byte, size int, bits uint64) {
	switch size {
	case 1:
		p[0] = byte(bits)
	case 2:
		binary.NativeEndian.PutUint16(p, uint16(bits))
	case 4:
		binary.NativeEndian.PutUint32(p, uint32(bits))
	default:
		binary.NativeEndian.PutUint64(p, bits)
	}
}

// Get returns the element at linear index i, interpreted per the stored tag.
func (a Array) Get(i int) Value {
	a.boundsCheck(i)
	return valueFromBits(a.dtype, loadBits(a.data[i*a.dtype.Size():], a.dtype.Size()))
}

// Set writes the element at linear index i. Setting never reallocates.
// Panics if the value's type tag does not match the array's.
func (a Array) Set(i int, v Value) {
	a.boundsCheck(i)
	if v.dtype != a.dtype {
		panic(fmt.Sprintf("cannot set a value of type %s in an array of type %s", v.dtype, a.dtype))
	}
	storeBits(a.data[i*a.dtype.Size():], a.dtype.Size(), v.bits)
}

// Resize grows or shrinks the array to n elements, preserving existing
// contents and zero-filling new slots. Resizing always reallocates into
// engine-owned memory, so a borrowed array's caller memory is left untouched.
func (a *Array) Resize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("invalid array length %d", n))
	}
	data := make([]byte, n*a.dtype.Size())
	copy(data, a.data)
	a.data = data
	a.n = n
	a.owned = true
}

// String returns a human-readable representation of the array.
func (a Array) String() string {
	return fmt.Sprintf("Array[%s](%d)", a.dtype, a.n)
}
