package main

import (
	"fmt"

	"github.com/BigDataAnalyticsGroup/rmi-go/internal/dataset"
	"github.com/BigDataAnalyticsGroup/rmi-go/rmi"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// NewStatsCmd prints the trained layer-1 coefficients and per-bucket
// bookkeeping, the debugging/inspection surface the reference's l1()/l2()/
// error*() getters expose but its own benchmark harness never calls.
func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print layer-1 coefficients and build statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("dataset")
			if path == "" {
				return fmt.Errorf("--dataset is required")
			}

			keys, err := dataset.LoadBinaryUint64(path)
			if err != nil {
				return err
			}

			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}

			index, err := rmi.New(keys, cfg)
			if err != nil {
				return fmt.Errorf("building rmi: %w", err)
			}

			stats := index.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerStyle.Render("rmi stats"))
			fmt.Fprintf(out, "%s %d\n", labelStyle.Render("n_keys:"), index.NKeys())
			fmt.Fprintf(out, "%s %d\n", labelStyle.Render("layer2_size:"), index.Layer2Size())
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("bound_mode:"), index.BoundMode())
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("size_in_bytes:"), humanize.Bytes(uint64(index.SizeInBytes())))
			fmt.Fprintf(out, "%s %d/%d\n", labelStyle.Render("empty_buckets:"), stats.EmptyBuckets, stats.LayerTwoBuckets)
			fmt.Fprintf(out, "%s %+v\n", labelStyle.Render("layer1:"), index.L1())
			fmt.Fprintf(out, "%s %.6g bytes\n", labelStyle.Render("layer1_size:"), float64(index.L1().SizeInBytes()))

			return nil
		},
	}
}
