package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// benchCase is one entry of a bench case file:
//
//	cases:
//	  - name: csr-1m
//	    dims: 10000x10000
//	    format: ds
//	    nnz: 1000000
//	    seed: 7
type benchCase struct {
	Name     string `yaml:"name"`
	Dims     string `yaml:"dims"`
	Format   string `yaml:"format"`
	Ordering string `yaml:"ordering"`
	NNZ      int64  `yaml:"nnz"`
	Seed     uint64 `yaml:"seed"`
}

type benchFile struct {
	Cases []benchCase `yaml:"cases"`
}

func loadBenchFile(path string) (*benchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case file: %w", err)
	}
	var bf benchFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parse case file %s: %w", path, err)
	}
	if len(bf.Cases) == 0 {
		return nil, fmt.Errorf("case file %s has no cases", path)
	}
	return &bf, nil
}

func benchCmd() *cli.Command {
	var (
		casesPath  string
		warmupRuns int64
		benchRuns  int64
	)

	return &cli.Command{
		Name:  "bench",
		Usage: "Run pack/iterate micro-benchmarks from a YAML case file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "cases",
				Aliases:     []string{"c"},
				Usage:       "path to YAML case file",
				Destination: &casesPath,
				Required:    true,
			},
			&cli.Int64Flag{
				Name:        "warmup",
				Usage:       "number of warmup runs per case",
				Value:       1,
				Destination: &warmupRuns,
			},
			&cli.Int64Flag{
				Name:        "runs",
				Usage:       "number of timed runs per case",
				Value:       3,
				Destination: &benchRuns,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_ = ctx
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))

			bf, err := loadBenchFile(casesPath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			fmt.Println("=== Mosaic Benchmark ===")
			fmt.Printf("Cases:  %d\n", len(bf.Cases))
			fmt.Printf("Warmup: %d runs\n", warmupRuns)
			fmt.Printf("Runs:   %d\n", benchRuns)
			fmt.Println()

			for _, bc := range bf.Cases {
				spec, err := specFromFlags(bc.Dims, bc.Format, bc.Ordering, bc.NNZ, bc.Seed)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: case %s: %v", bc.Name, err), 1)
				}

				for i := range int(warmupRuns) {
					log.Info("warmup run", "case", bc.Name, "run", i+1)
					runCase(spec)
				}

				var packTotal, iterTotal time.Duration
				var entries int
				for i := range int(benchRuns) {
					log.Info("timed run", "case", bc.Name, "run", i+1)
					r := runCase(spec)
					packTotal += r.pack
					iterTotal += r.iterate
					entries = r.entries
				}

				packAvg := packTotal / time.Duration(benchRuns)
				iterAvg := iterTotal / time.Duration(benchRuns)
				fmt.Printf("%-16s dims=%s format=%s nnz=%d entries=%d pack=%s iterate=%s (%.2f Mentry/s)\n",
					bc.Name, bc.Dims, spec.formatString(), spec.NNZ, entries,
					packAvg.Round(time.Microsecond), iterAvg.Round(time.Microsecond),
					float64(entries)/iterAvg.Seconds()/1e6)
			}

			return nil
		},
	}
}

type benchResult struct {
	pack    time.Duration
	iterate time.Duration
	entries int
}

func runCase(spec tensorSpec) benchResult {
	packStart := time.Now()
	t := spec.generate("B")
	packDur := time.Since(packStart)

	iterStart := time.Now()
	entries := 0
	var sum float64
	it := t.Iterator()
	for it.Next() {
		sum += it.Value()
		entries++
	}
	iterDur := time.Since(iterStart)
	_ = sum

	return benchResult{pack: packDur, iterate: iterDur, entries: entries}
}
