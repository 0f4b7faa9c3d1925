package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexSize(t *testing.T) {
	tests := []struct {
		name  string
		index Index
		size  int
	}{
		{
			name:  "scalar",
			index: NewIndex(NewFormat()),
			size:  1,
		},
		{
			name: "all dense",
			index: NewIndex(NewFormat(Dense, Dense),
				DenseModeIndex(3), DenseModeIndex(4)),
			size: 12,
		},
		{
			name:  "csr",
			index: MakeCSRIndex(3, []int32{0, 1, 1, 2}, []int32{0, 2}),
			size:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.size, tt.index.Size())
		})
	}
}

func TestIndexValidation(t *testing.T) {
	assert.Panics(t, func() { NewIndex(NewFormat(Dense)) }, "missing mode index")
	assert.Panics(t, func() {
		NewIndex(NewFormat(Dense), DenseModeIndex(2)).Mode(1)
	})
	assert.Panics(t, func() { DenseModeIndex(3).IndexArray(1) })
}

func TestStorageLeafCountMismatchIsLazy(t *testing.T) {
	// Index says 2 leaf entries, values hold 3: the mismatch surfaces at
	// the next read, not at installation time.
	m := MakeCSR("A", Shape{3, 3}, []int32{0, 1, 1, 2}, []int32{0, 2}, []float64{5, 9, 7})
	assert.Panics(t, func() { m.Storage().Values() })
	assert.Panics(t, func() { m.Iterator() })
}

func TestStorageSetIndexFormatCheck(t *testing.T) {
	s := NewStorage(CSC)
	assert.Panics(t, func() {
		s.SetIndex(MakeCSRIndex(2, []int32{0, 0, 0}, nil))
	})
}

func TestStorageUnpacked(t *testing.T) {
	s := NewStorage(CSR)
	assert.Equal(t, 0, s.Size())
	require.NotPanics(t, func() { s.Values() })
	assert.Equal(t, 0, s.Values().Len())
}
