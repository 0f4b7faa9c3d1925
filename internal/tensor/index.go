package tensor

import "fmt"

// ModeIndex holds the physical metadata of a single mode. A dense mode
// carries a single-cell size array (children per parent entry); a compressed
// mode carries a position array (pos, one entry per parent plus one) and a
// coordinate array (idx, one entry per stored child).
type ModeIndex struct {
	arrays []Array
}

// DenseModeIndex creates the metadata of a dense mode of the given size.
func DenseModeIndex(size int) ModeIndex {
	arr := NewArray(Int32, 1)
	arr.Set(0, ValueOf(int32(size)))
	return ModeIndex{arrays: []Array{arr}}
}

// CompressedModeIndex creates the metadata of a compressed mode from its
// position and coordinate arrays.
func CompressedModeIndex(pos, idx Array) ModeIndex {
	return ModeIndex{arrays: []Array{pos, idx}}
}

// NumIndexArrays returns the number of metadata arrays (1 for dense modes,
// 2 for compressed modes).
func (m ModeIndex) NumIndexArrays() int {
	return len(m.arrays)
}

// IndexArray returns the i-th metadata array: for dense modes array 0 is the
// size cell; for compressed modes array 0 is pos and array 1 is idx.
func (m ModeIndex) IndexArray(i int) Array {
	if i < 0 || i >= len(m.arrays) {
		panic(fmt.Sprintf("mode index has %d arrays, requested array %d", len(m.arrays), i))
	}
	return m.arrays[i]
}

// Index is the physical metadata of a packed tensor: one ModeIndex per
// physical mode position in the format's mode ordering.
type Index struct {
	format Format
	modes  []ModeIndex
}

// NewIndex creates an index for the given format. One ModeIndex is required
// per mode.
func NewIndex(format Format, modes ...ModeIndex) Index {
	if len(modes) != format.Order() {
		panic(fmt.Sprintf("format of order %d requires %d mode indexes, got %d",
			format.Order(), format.Order(), len(modes)))
	}
	return Index{format: format, modes: modes}
}

// Format returns the format the index was built for.
func (ix Index) Format() Format {
	return ix.format
}

// Order returns the number of modes.
func (ix Index) Order() int {
	return len(ix.modes)
}

// Mode returns the metadata of the mode at physical position pos.
func (ix Index) Mode(pos int) ModeIndex {
	if pos < 0 || pos >= len(ix.modes) {
		panic(fmt.Sprintf("index has %d modes, requested mode %d", len(ix.modes), pos))
	}
	return ix.modes[pos]
}

// Size returns the number of leaf entries the index describes: walking the
// modes outer to inner, a dense mode multiplies the entry count by its size
// and a compressed mode maps it through its position array.
func (ix Index) Size() int {
	size := 1
	for pos := 0; pos < len(ix.modes); pos++ {
		switch ix.format.Kind(pos) {
		case Dense:
			size *= ix.modes[pos].IndexArray(0).Get(0).Int()
		case Compressed:
			size = ix.modes[pos].IndexArray(0).Get(size).Int()
		default:
			panic(fmt.Sprintf("mode kind %v is not supported", ix.format.Kind(pos)))
		}
	}
	return size
}

// MakeCSRIndex builds a CSR matrix index over caller-owned row position and
// column coordinate arrays. The arrays are borrowed, never copied or freed.
func MakeCSRIndex(numRows int, rowptr, colidx []int32) Index {
	return NewIndex(CSR,
		DenseModeIndex(numRows),
		CompressedModeIndex(BorrowArray(rowptr), BorrowArray(colidx)))
}

// MakeCSCIndex builds a CSC matrix index over caller-owned column position
// and row coordinate arrays. The arrays are borrowed, never copied or freed.
func MakeCSCIndex(numCols int, colptr, rowidx []int32) Index {
	return NewIndex(CSC,
		DenseModeIndex(numCols),
		CompressedModeIndex(BorrowArray(colptr), BorrowArray(rowidx)))
}
