package main

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/BigDataAnalyticsGroup/rmi-go/internal/bench"
	"github.com/BigDataAnalyticsGroup/rmi-go/internal/dataset"
	"github.com/BigDataAnalyticsGroup/rmi-go/rmi"
	"github.com/spf13/cobra"
)

// NewBenchCmd reproduces original_source/experiments/index_comparison.cpp's
// benchmark_rmi layer2_size sweep for this Rmi alone, emitting the §6 CSV
// schema to stdout.
func NewBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Sweep layer2-size and emit a benchmark CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("dataset")
			if path == "" {
				return fmt.Errorf("--dataset is required")
			}
			nReps, _ := cmd.Flags().GetInt("reps")
			nSamples, _ := cmd.Flags().GetInt("samples")

			keys, err := dataset.LoadBinaryUint64(path)
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				return fmt.Errorf("dataset %q has no keys to sample", path)
			}

			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}

			rnd := rand.New(rand.NewSource(1))
			samples := make([]uint64, nSamples)
			for i := range samples {
				samples[i] = keys[rnd.Intn(len(keys))]
			}

			resolve := func(_ *rmi.Rmi[uint64], key uint64, _, lo, hi int) int {
				return lo + sort.Search(hi-lo, func(i int) bool { return keys[lo+i] >= key })
			}

			rows, err := bench.Sweep(path, keys, cfg, nReps, samples, resolve)
			if err != nil {
				return err
			}

			return bench.WriteCSV(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().Int("reps", 3, "Number of repetitions per layer2-size")
	cmd.Flags().Int("samples", 10000, "Number of sampled queries per repetition")
	return cmd
}
