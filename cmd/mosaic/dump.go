package main

import (
	"context"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/mosaic-ml/mosaic/tensor"
)

type dumpEntry struct {
	Coordinate []int   `json:"coordinate"`
	Value      float64 `json:"value"`
}

type dumpMode struct {
	Kind   string  `json:"kind"`
	Arrays [][]int `json:"arrays,omitempty"`
}

type dumpOutput struct {
	Name     string      `json:"name"`
	Dims     []int       `json:"dims"`
	Format   string      `json:"format"`
	Ordering []int       `json:"ordering,omitempty"`
	Modes    []dumpMode  `json:"modes"`
	Entries  []dumpEntry `json:"entries"`
}

func dumpCmd() *cli.Command {
	var (
		dimsStr     string
		formatStr   string
		orderingStr string
		nnz         int64
		seed        int64
		pretty      bool
	)

	return &cli.Command{
		Name:  "dump",
		Usage: "Generate a random tensor and dump its entries and index arrays as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dims",
				Aliases:     []string{"d"},
				Usage:       "tensor dimensions, e.g. 4x4",
				Value:       "4x4",
				Destination: &dimsStr,
			},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "per-mode storage kinds, one letter per mode ('d' dense, 's' sparse)",
				Destination: &formatStr,
			},
			&cli.StringFlag{
				Name:        "ordering",
				Usage:       "mode ordering as a comma-separated permutation, e.g. 1,0",
				Destination: &orderingStr,
			},
			&cli.Int64Flag{
				Name:        "nnz",
				Usage:       "number of random entries to insert",
				Value:       8,
				Destination: &nnz,
			},
			&cli.Int64Flag{
				Name:        "seed",
				Usage:       "random seed",
				Value:       42,
				Destination: &seed,
			},
			&cli.BoolFlag{
				Name:        "pretty",
				Usage:       "indent JSON output",
				Destination: &pretty,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_ = ctx
			spec, err := specFromFlags(dimsStr, formatStr, orderingStr, nnz, uint64(seed))
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			t := spec.generate("A")
			out := dumpTensor(t, spec)

			enc := json.NewEncoder(os.Stdout)
			if pretty {
				enc.SetIndent("", "  ")
			}
			if err := enc.Encode(out); err != nil {
				return cli.Exit(fmt.Sprintf("error: encode: %v", err), 1)
			}
			return nil
		},
	}
}

func dumpTensor(t tensor.Tensor[float64], spec tensorSpec) dumpOutput {
	out := dumpOutput{
		Name:     t.Name(),
		Dims:     spec.Dims,
		Format:   spec.formatString(),
		Ordering: spec.Ordering,
	}

	idx := t.Storage().Index()
	for m := range t.Order() {
		mi := idx.Mode(m)
		dm := dumpMode{Kind: t.Format().Kind(m).String()}
		for a := range mi.NumIndexArrays() {
			arr := mi.IndexArray(a)
			vals := make([]int, arr.Len())
			for i := range vals {
				vals[i] = arr.Get(i).Int()
			}
			dm.Arrays = append(dm.Arrays, vals)
		}
		out.Modes = append(out.Modes, dm)
	}

	it := t.Iterator()
	for it.Next() {
		c := it.Coordinate()
		coord := make([]int, len(c))
		copy(coord, c)
		out.Entries = append(out.Entries, dumpEntry{Coordinate: coord, Value: it.Value()})
	}
	return out
}
