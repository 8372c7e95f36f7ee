package main

import (
	"github.com/spf13/cobra"
)

func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rmi-bench",
		Short:         "Build, query, and benchmark recursive model indexes",
		Long:          `A standalone harness for building Rmi instances over a key dataset, querying them, and sweeping layer-2 sizes for a benchmark CSV, reproducing example.cpp and index_comparison.cpp's single-index measurement loop.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	addPersistentFlags(rootCmd)
	addSubcommands(rootCmd)

	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("dataset", "", "Path to a §6-format key file")
	cmd.PersistentFlags().String("layer1", "linear_spline", "Layer-1 submodel kind (linear_spline|linear_regression|cubic_spline|radix)")
	cmd.PersistentFlags().String("layer2", "linear_spline", "Layer-2 submodel kind (linear_spline|linear_regression|cubic_spline|radix)")
	cmd.PersistentFlags().Int("layer2-size", 1024, "Number of layer-2 buckets")
	cmd.PersistentFlags().String("bound-mode", "labs", "Error-bound mode (lind|labs|gind|gabs|nb)")
	cmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}

func addSubcommands(root *cobra.Command) {
	root.AddCommand(
		NewBuildCmd(),
		NewQueryCmd(),
		NewBenchCmd(),
		NewServeCmd(),
		NewStatsCmd(),
	)
}
