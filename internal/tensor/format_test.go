package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFormatDefaults(t *testing.T) {
	f := NewFormat(Dense, Compressed, Dense)
	assert.Equal(t, 3, f.Order())
	assert.Equal(t, []int{0, 1, 2}, f.ModeOrdering(), "identity ordering by default")
	assert.Equal(t, Compressed, f.Kind(1))
}

func TestNewOrderedFormatValidation(t *testing.T) {
	assert.Panics(t, func() { NewOrderedFormat([]ModeKind{Dense}, []int{0, 1}) })
	assert.Panics(t, func() { NewOrderedFormat([]ModeKind{Dense, Dense}, []int{0, 0}) })
	assert.Panics(t, func() { NewOrderedFormat([]ModeKind{Dense, Dense}, []int{1, 2}) })
}

func TestFormatEquals(t *testing.T) {
	a := NewOrderedFormat([]ModeKind{Dense, Compressed}, []int{0, 1})
	b := NewOrderedFormat([]ModeKind{Dense, Compressed}, []int{1, 0})

	assert.True(t, a.Equals(CSR))
	assert.True(t, b.Equals(CSC))
	assert.False(t, a.Equals(b), "differs in ordering")
	assert.False(t, a.Equals(NewFormat(Dense, Dense)), "differs in kinds")
	assert.False(t, a.Equals(NewFormat(Dense)), "differs in order")
}

func TestFormatImmutability(t *testing.T) {
	kinds := []ModeKind{Dense, Compressed}
	ordering := []int{1, 0}
	f := NewOrderedFormat(kinds, ordering)

	kinds[0] = Compressed
	ordering[0] = 0
	assert.Equal(t, Dense, f.Kind(0), "constructor copies its inputs")
	assert.Equal(t, []int{1, 0}, f.ModeOrdering())
}

func TestUniformFormat(t *testing.T) {
	f := UniformFormat(Compressed, 3)
	assert.Equal(t, []ModeKind{Compressed, Compressed, Compressed}, f.ModeKinds())
}

func TestSparseAlias(t *testing.T) {
	assert.Equal(t, Compressed, Sparse)
}
