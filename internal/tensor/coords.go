package tensor

import "encoding/binary"

// DefaultAllocSize is the default initial size of the coordinate
// accumulation buffer, in bytes.
const DefaultAllocSize = 1 << 20

// coordinateBuffer is an append-only byte arena recording (coordinate tuple,
// value) insertions before packing: order int64 coordinates followed by one
// component value per record, contiguous, in insertion order. No sorting,
// deduplication, or bounds checking happens here. The arena grows by
// doubling and never shrinks; pack clears it logically by resetting the
// write offset.
type coordinateBuffer struct {
	data       []byte
	used       int
	order      int
	ctype      DataType
	recordSize int
}

func newCoordinateBuffer(order int, ctype DataType) *coordinateBuffer {
	return &coordinateBuffer{
		order:      order,
		ctype:      ctype,
		recordSize: order*8 + ctype.Size(),
	}
}

// reserve ensures room for n more records, growing from allocSize by
// doubling.
func (b *coordinateBuffer) reserve(n, allocSize int) {
	need := b.used + n*b.recordSize
	if need <= len(b.data) {
		return
	}
	size := len(b.data)
	if size == 0 {
		size = allocSize
	}
	for size < need {
		size *= 2
	}
	data := make([]byte, size)
	copy(data, b.data[:b.used])
	b.data = data
}

// append writes one record. The caller has already validated coordinate
// arity and value type.
func (b *coordinateBuffer) append(coord []int, v Value, allocSize int) {
	b.reserve(1, allocSize)
	off := b.used
	for _, c := range coord {
		binary.NativeEndian.PutUint64(b.data[off:], uint64(int64(c)))
		off += 8
	}
	storeBits(b.data[off:], b.ctype.Size(), v.bits)
	b.used = off + b.ctype.Size()
}

// len returns the number of buffered records.
func (b *coordinateBuffer) len() int {
	if b.used == 0 {
		return 0
	}
	return b.used / b.recordSize
}

// record decodes record i into coord (length order, caller-allocated) and
// returns its value.
func (b *coordinateBuffer) record(i int, coord []int) Value {
	off := i * b.recordSize
	for j := 0; j < b.order; j++ {
		coord[j] = int(int64(binary.NativeEndian.Uint64(b.data[off:])))
		off += 8
	}
	return valueFromBits(b.ctype, loadBits(b.data[off:], b.ctype.Size()))
}

// clear resets the write offset; the arena is kept for reuse.
func (b *coordinateBuffer) clear() {
	b.used = 0
}
