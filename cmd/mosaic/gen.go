package main

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/mosaic-ml/mosaic/tensor"
)

// tensorSpec describes a synthetic tensor: its dimensions, per-mode storage
// kinds, mode ordering, and how many random entries to fill it with.
type tensorSpec struct {
	Dims     []int
	Kinds    []tensor.ModeKind
	Ordering []int
	NNZ      int
	Seed     uint64
}

func parseDims(s string) ([]int, error) {
	parts := strings.Split(s, "x")
	dims := make([]int, len(parts))
	for i, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid dimension %q in %q", p, s)
		}
		dims[i] = d
	}
	return dims, nil
}

// parseKinds decodes a per-mode format string, one letter per mode:
// 'd' for dense, 's' for compressed (sparse).
func parseKinds(s string, order int) ([]tensor.ModeKind, error) {
	if s == "" {
		kinds := make([]tensor.ModeKind, order)
		for i := range kinds {
			kinds[i] = tensor.Compressed
		}
		return kinds, nil
	}
	if len(s) != order {
		return nil, fmt.Errorf("format %q has %d modes, want %d", s, len(s), order)
	}
	kinds := make([]tensor.ModeKind, order)
	for i, c := range s {
		switch c {
		case 'd':
			kinds[i] = tensor.Dense
		case 's':
			kinds[i] = tensor.Compressed
		default:
			return nil, fmt.Errorf("unknown mode kind %q in format %q (want 'd' or 's')", c, s)
		}
	}
	return kinds, nil
}

func parseOrdering(s string, order int) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != order {
		return nil, fmt.Errorf("ordering %q has %d modes, want %d", s, len(parts), order)
	}
	perm := make([]int, len(parts))
	for i, p := range parts {
		m, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid mode %q in ordering %q", p, s)
		}
		perm[i] = m
	}
	return perm, nil
}

func specFromFlags(dimsStr, formatStr, orderingStr string, nnz int64, seed uint64) (tensorSpec, error) {
	dims, err := parseDims(dimsStr)
	if err != nil {
		return tensorSpec{}, err
	}
	kinds, err := parseKinds(formatStr, len(dims))
	if err != nil {
		return tensorSpec{}, err
	}
	ordering, err := parseOrdering(orderingStr, len(dims))
	if err != nil {
		return tensorSpec{}, err
	}
	return tensorSpec{
		Dims:     dims,
		Kinds:    kinds,
		Ordering: ordering,
		NNZ:      int(nnz),
		Seed:     seed,
	}, nil
}

func (s tensorSpec) format() tensor.Format {
	if s.Ordering != nil {
		return tensor.NewOrderedFormat(s.Kinds, s.Ordering)
	}
	return tensor.NewFormat(s.Kinds...)
}

func (s tensorSpec) formatString() string {
	var b strings.Builder
	for _, k := range s.Kinds {
		if k == tensor.Dense {
			b.WriteByte('d')
		} else {
			b.WriteByte('s')
		}
	}
	return b.String()
}

// generate builds a packed float64 tensor with NNZ uniformly random entries.
// Duplicate coordinates are summed by packing, so the packed entry count may
// be slightly below NNZ.
func (s tensorSpec) generate(name string) tensor.Tensor[float64] {
	t := tensor.New[float64](name, tensor.Shape(s.Dims), s.format())
	rng := rand.New(rand.NewPCG(s.Seed, s.Seed))
	t.Reserve(s.NNZ)
	coord := make([]int, len(s.Dims))
	for range s.NNZ {
		for m, d := range s.Dims {
			coord[m] = rng.IntN(d)
		}
		t.Insert(coord, rng.Float64())
	}
	t.Pack()
	return t
}
