package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
)

func infoCmd() *cli.Command {
	var (
		dimsStr     string
		formatStr   string
		orderingStr string
		nnz         int64
		seed        int64
	)

	return &cli.Command{
		Name:  "info",
		Usage: "Generate a random tensor and print its storage summary",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dims",
				Aliases:     []string{"d"},
				Usage:       "tensor dimensions, e.g. 1000x1000",
				Value:       "1000x1000",
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
				Value:       10000,
				Destination: &nnz,
			},
			&cli.Int64Flag{
				Name:        "seed",
				Usage:       "random seed",
				Value:       42,
				Destination: &seed,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			spec, err := specFromFlags(dimsStr, formatStr, orderingStr, nnz, uint64(seed))
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			_ = ctx
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			log.Info("generating tensor", "dims", dimsStr, "format", spec.formatString(), "nnz", spec.NNZ)

			packStart := time.Now()
			t := spec.generate("A")
			packDuration := time.Since(packStart)

			stored := t.Storage().Values().Len()
			explicit := 0
			var indexBytes, valueBytes int
			it := t.Iterator()
			for it.Next() {
				if it.Value() != 0 {
					explicit++
				}
			}
			idx := t.Storage().Index()
			for m := range t.Order() {
				mi := idx.Mode(m)
				for a := range mi.NumIndexArrays() {
					arr := mi.IndexArray(a)
					indexBytes += arr.Len() * arr.DataType().Size()
				}
			}
			valueBytes = stored * t.ComponentType().Size()

			section("Tensor")
			row("name", t.Name())
			row("order", fmt.Sprintf("%d", t.Order()))
			row("dims", dimsStr)
			row("format", spec.formatString())
			if spec.Ordering != nil {
				row("ordering", orderingStr)
			}
			row("component_type", t.ComponentType().String())

			section("Storage")
			row("stored_values", fmt.Sprintf("%d", stored))
			row("nonzeros", fmt.Sprintf("%d", explicit))
			row("index_bytes", formatBytes(uint64(indexBytes)))
			row("value_bytes", formatBytes(uint64(valueBytes)))
			row("insert+pack", packDuration.Round(time.Microsecond).String())

			return nil
		},
	}
}

func section(title string) {
	line := strings.Repeat("-", len(title)+8)
	fmt.Printf("\n%s\n--- %s ---\n%s\n", line, title, line)
}

func row(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%-18s %s\n", label+":", value)
}

func formatBytes(b uint64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case b >= gb:
		return fmt.Sprintf("%.2f GiB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.2f MiB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.2f KiB", float64(b)/float64(kb))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
