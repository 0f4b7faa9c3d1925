package tensor

import (
	"fmt"
	"slices"
)

// packEntry is one staged (logical coordinate tuple, value) pair.
type packEntry struct {
	coord []int
	val   Value
}

// packEntries compiles accumulated entries into the Index and values buffer
// of the given format. Coordinates arrive in logical order; they are
// permuted to physical order, stable-sorted lexicographically, and walked
// level by level: dense modes record their size and zero-fill holes,
// compressed modes grow pos/idx arrays. Entries sharing a coordinate are
// summed.
func packEntries(format Format, dims Shape, ctype DataType, entries []packEntry) (Index, Array) {
	order := format.Order()
	ordering := format.ModeOrdering()
	physDims := dims.Permute(ordering)

	// Reorder each coordinate tuple into physical order, checking bounds
	// against the declared dimensions.
	phys := make([]packEntry, len(entries))
	for i, e := range entries {
		pc := make([]int, order)
		for pos, mode := range ordering {
			c := e.coord[mode]
			if c < 0 || c >= dims[mode] {
				panic(fmt.Sprintf("coordinate %v is out of bounds for dimensions %v",
					e.coord, []int(dims)))
			}
			pc[pos] = c
		}
		phys[i] = packEntry{coord: pc, val: e.val}
	}

	// The stable lexicographic sort fixes the final leaf order and the
	// ascending-coordinate invariant of compressed modes.
	slices.SortStableFunc(phys, func(a, b packEntry) int {
		return slices.Compare(a.coord, b.coord)
	})

	type modeBuilder struct {
		pos []int32
		idx []int32
	}
	builders := make([]modeBuilder, order)
	for pos := range builders {
		if format.Kind(pos) == Compressed {
			builders[pos].pos = []int32{0}
		}
	}
	var values []Value

	var walk func(level, begin, end int)
	walk = func(level, begin, end int) {
		if level == order {
			v := ZeroValue(ctype)
			for i := begin; i < end; i++ {
				v = v.Add(phys[i].val)
			}
			values = append(values, v)
			return
		}
		switch format.Kind(level) {
		case Dense:
			// Visit every coordinate in range, including holes.
			b := begin
			for c := 0; c < physDims[level]; c++ {
				e := b
				for e < end && phys[e].coord[level] == c {
					e++
				}
				walk(level+1, b, e)
				b = e
			}
		case Compressed:
			mb := &builders[level]
			i := begin
			for i < end {
				c := phys[i].coord[level]
				j := i
				for j < end && phys[j].coord[level] == c {
					j++
				}
				mb.idx = append(mb.idx, int32(c))
				walk(level+1, i, j)
				i = j
			}
			mb.pos = append(mb.pos, int32(len(mb.idx)))
		default:
			panic(fmt.Sprintf("mode kind %v is not supported", format.Kind(level)))
		}
	}
	walk(0, 0, len(phys))

	modes := make([]ModeIndex, order)
	for pos := range modes {
		switch format.Kind(pos) {
		case Dense:
			modes[pos] = DenseModeIndex(physDims[pos])
		case Compressed:
			modes[pos] = CompressedModeIndex(
				ArrayFrom(builders[pos].pos), ArrayFrom(builders[pos].idx))
		}
	}

	vals := NewArray(ctype, len(values))
	for i, v := range values {
		vals.Set(i, v)
	}
	return NewIndex(format, modes...), vals
}
