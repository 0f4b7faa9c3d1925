package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosaic-ml/mosaic/tensor"
)

func TestParseDims(t *testing.T) {
	dims, err := parseDims("3x4x5")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, dims)

	_, err = parseDims("3x0")
	assert.Error(t, err)

	_, err = parseDims("3xfoo")
	assert.Error(t, err)
}

func TestParseKinds(t *testing.T) {
	kinds, err := parseKinds("ds", 2)
	require.NoError(t, err)
	assert.Equal(t, []tensor.ModeKind{tensor.Dense, tensor.Compressed}, kinds)

	kinds, err = parseKinds("", 2)
	require.NoError(t, err)
	assert.Equal(t, []tensor.ModeKind{tensor.Compressed, tensor.Compressed}, kinds)

	_, err = parseKinds("dsd", 2)
	assert.Error(t, err)

	_, err = parseKinds("dx", 2)
	assert.Error(t, err)
}

func TestParseOrdering(t *testing.T) {
	perm, err := parseOrdering("1,0", 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, perm)

	perm, err = parseOrdering("", 2)
	require.NoError(t, err)
	assert.Nil(t, perm)

	_, err = parseOrdering("1,0,2", 2)
	assert.Error(t, err)
}

func TestGenerateDeterministic(t *testing.T) {
	spec, err := specFromFlags("10x10", "ds", "", 20, 7)
	require.NoError(t, err)

	a := spec.generate("a")
	b := spec.generate("b")
	assert.True(t, tensor.Equals(a.TensorBase, b.TensorBase))

	entries := 0
	it := a.Iterator()
	for it.Next() {
		c := it.Coordinate()
		assert.Less(t, c[0], 10)
		assert.Less(t, c[1], 10)
		entries++
	}
	assert.Greater(t, entries, 0)
	assert.LessOrEqual(t, entries, 20)
}

func TestDumpTensorCSR(t *testing.T) {
	spec, err := specFromFlags("3x3", "ds", "", 4, 1)
	require.NoError(t, err)

	out := dumpTensor(spec.generate("A"), spec)
	assert.Equal(t, "A", out.Name)
	assert.Equal(t, []int{3, 3}, out.Dims)
	assert.Equal(t, "ds", out.Format)
	require.Len(t, out.Modes, 2)
	assert.Equal(t, "dense", out.Modes[0].Kind)
	assert.Equal(t, "compressed", out.Modes[1].Kind)
	require.Len(t, out.Modes[1].Arrays, 2)
	assert.Len(t, out.Modes[1].Arrays[0], 4) // pos has numRows+1 entries
	assert.Equal(t, len(out.Entries), len(out.Modes[1].Arrays[1]))
}
